// Package capture 签名采集与图片上传的适配层
// 引擎只拿到一个不透明引用串（att://<id>），不关心图片内容与存储细节。
// 采集/上传是一次性操作：失败直接上抛，由调用方决定是否重新发起。
package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

var (
	// ErrEmptyPayload 空的采集内容
	ErrEmptyPayload = errors.New("capture payload is empty")
	// ErrUnknownRef 引用串不属于本存储
	ErrUnknownRef = errors.New("unknown attachment reference")
)

const refScheme = "att://"

// Store 本地附件存储，引用串与磁盘文件一一对应
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create attachment dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// save 落盘并生成引用串
func (s *Store) save(data []byte, ext string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPayload
	}
	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to store attachment: %w", err)
	}
	klog.V(6).Infof("附件已保存: %s (%d bytes)", name, len(data))
	return refScheme + name, nil
}

// Put 以指定文件名落盘，用于导出产物等命名固定的附件
// 同名文件会被覆盖，重复导出以最后一次为准
func (s *Store) Put(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPayload
	}
	if name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("invalid attachment name: %q", name)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to store attachment: %w", err)
	}
	klog.V(6).Infof("附件已保存: %s (%d bytes)", name, len(data))
	return refScheme + name, nil
}

// Resolve 把引用串还原为磁盘路径
func (s *Store) Resolve(ref string) (string, error) {
	name, ok := strings.CutPrefix(ref, refScheme)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %s", ErrUnknownRef, ref)
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRef, ref)
	}
	return path, nil
}

// SignatureAdapter 手绘签名采集适配器
// 采集组件本身是黑盒，这里只接收它产出的位图
type SignatureAdapter struct {
	store *Store
}

func NewSignatureAdapter(store *Store) *SignatureAdapter {
	return &SignatureAdapter{store: store}
}

// Capture 用户完成手绘后调用，返回签名图的引用串
func (a *SignatureAdapter) Capture(ctx context.Context, png []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ref, err := a.store.save(png, ".png")
	if err != nil {
		return "", fmt.Errorf("signature capture failed: %w", err)
	}
	return ref, nil
}

// ImageAdapter 图片上传适配器
type ImageAdapter struct {
	store *Store
}

func NewImageAdapter(store *Store) *ImageAdapter {
	return &ImageAdapter{store: store}
}

// Upload 远端确认接收后返回引用串
func (a *ImageAdapter) Upload(ctx context.Context, data []byte, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if ext == "" {
		ext = ".jpg"
	}
	ref, err := a.store.save(data, ext)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	return ref, nil
}
