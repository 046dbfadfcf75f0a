package engine

// 工具箱会议记录的固定字段表
// 20 个讨论主题 + 10 行参会人员名册 + 双方签名，为模板的既定版式
func toolboxMeetingFields() []FieldDefinition {
	fields := []FieldDefinition{
		scalar("tbm_project", "Project Title", ValueText, true, "Project Title:", "Permit No:"),
		scalar("tbm_permit_no", "Permit No", ValueText, false, "Permit No:", ""),
		scalar("tbm_date", "Date", ValueDate, true, "Date:", "Time:"),
		scalar("tbm_time", "Time", ValueTime, true, "Time:", ""),
		scalar("tbm_location", "Location", ValueText, true, "Location:", ""),
		scalar("tbm_supervisor_name", "Conducted By (Supervisor)", ValueText, true, "Conducted By (Supervisor):", ""),
		selectField("tbm_trade", "Trade", false, "Trade:", "", []string{
			"Electrical", "Mechanical", "Civil", "Plumbing", "Scaffolding", "General",
		}),
	}

	fields = append(fields, checkboxRows("tbm_subject%02d", "S%d.", toolboxSubjects)...)
	fields = append(fields, personRows("tbm_att%02d", "Attendee %d", "A%d.", 10)...)

	fields = append(fields,
		scalar("tbm_coordinator_sign", "Safety Coordinator Signature", ValueSignature, false, "Safety Coordinator Signature:", ""),
		scalar("tbm_supervisor_sign", "Supervisor Signature", ValueSignature, true, "Supervisor Signature:", ""),
		scalar("tbm_site_photo", "Site Photo", ValueImage, false, "Site Photo:", ""),
	)
	return fields
}

// 讨论主题，顺序与模板中的 S1..S20 行号一致
var toolboxSubjects = []string{
	"Safe work procedures discussed",
	"Proper use of PPE",
	"Housekeeping at work area",
	"Permit requirements explained",
	"Electrical hazards",
	"Working at height precautions",
	"Lifting operations",
	"Hand and power tools",
	"Hazardous substances handling",
	"Emergency response procedures",
	"First aid facilities",
	"Hot work precautions",
	"Confined space entry",
	"Scaffold safety",
	"Ladder safety",
	"Machine guarding",
	"Noise and hearing protection",
	"Heat stress prevention",
	"Traffic management",
	"Incident reporting",
}
