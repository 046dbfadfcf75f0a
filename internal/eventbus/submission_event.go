package eventbus

type SubmissionEventType string

const (
	SubmissionEventSaved         SubmissionEventType = "Saved"
	SubmissionEventStatusChanged SubmissionEventType = "StatusChanged"
	SubmissionEventExported      SubmissionEventType = "Exported"
)

type SubmissionEvent struct {
	Type         SubmissionEventType
	SubmissionID uint
	Ref          string
	Kind         string
	Status       string
	ArtifactRef  string // 仅导出事件
}

type SubmissionEventHandler = Handler[SubmissionEvent]
type SubmissionEventBus = Bus[SubmissionEventType, SubmissionEvent]

func NewSubmissionEventBus() *SubmissionEventBus {
	return NewBus[SubmissionEventType, SubmissionEvent]()
}
