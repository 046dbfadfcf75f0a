package engine

// 视频监控巡检表的固定字段表
func surveillanceChecklistFields() []FieldDefinition {
	fields := []FieldDefinition{
		scalar("vsc_site", "Site", ValueText, true, "Site:", "Date:"),
		scalar("vsc_date", "Date", ValueDate, true, "Date:", ""),
		scalar("vsc_inspector", "Inspector Name", ValueText, true, "Inspector Name:", ""),
	}

	fields = append(fields, checkboxRows("vsc_cam%02d", "C%d.", surveillanceChecks)...)

	fields = append(fields,
		scalar("vsc_remarks", "Remarks", ValueText, false, "Remarks:", ""),
		scalar("vsc_inspector_sign", "Inspector Signature", ValueSignature, true, "Inspector Signature:", ""),
	)
	return fields
}

// 巡检项，顺序与模板中的 C1..C12 行号一致
var surveillanceChecks = []string{
	"Camera lens clean and unobstructed",
	"Housing free of damage",
	"Field of view correctly aligned",
	"Recording indicator active",
	"Time stamp accurate",
	"Night vision functional",
	"Cabling secured and undamaged",
	"Monitor display clear",
	"Recorder storage sufficient",
	"Playback verified",
	"Backup power operational",
	"Signage displayed at entrance",
}
