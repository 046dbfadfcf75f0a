package engine

// 高处作业许可证的固定字段表
func workAtHeightFields() []FieldDefinition {
	fields := []FieldDefinition{
		scalar("wah_permit_no", "Permit No", ValueText, true, "Permit No:", "Date:"),
		scalar("wah_date", "Date", ValueDate, true, "Date:", ""),
		scalar("wah_location", "Location of Work", ValueText, true, "Location of Work:", ""),
		scalar("wah_description", "Description of Work", ValueText, true, "Description of Work:", ""),
		scalar("wah_start_time", "Valid From", ValueTime, true, "Valid From:", "Valid To:"),
		scalar("wah_end_time", "Valid To", ValueTime, true, "Valid To:", ""),
		selectField("wah_access_method", "Means of Access", false, "Means of Access:", "", []string{
			"Scaffold", "Mobile Elevated Work Platform", "Ladder", "Boatswain Chair", "Roof Access",
		}),
	}

	fields = append(fields, checkboxRows("wah_ctrl%02d", "H%d.", workAtHeightControls)...)

	fields = append(fields,
		scalar("wah_applicant_name", "Applicant Name", ValueText, true, "Applicant Name:", ""),
		scalar("wah_applicant_sign", "Applicant Signature", ValueSignature, true, "Applicant Signature:", ""),
		scalar("wah_assessor_sign", "Assessor Signature", ValueSignature, true, "Assessor Signature:", ""),
		scalar("wah_approver_sign", "Approver Signature", ValueSignature, true, "Approver Signature:", ""),
	)
	return fields
}

// 管控措施，顺序与模板中的 H1..H8 行号一致
var workAtHeightControls = []string{
	"Anchorage points identified",
	"Full body harness inspected",
	"Guard rails installed",
	"Openings covered or barricaded",
	"Area below cordoned off",
	"Weather conditions assessed",
	"Rescue plan in place",
	"Workers medically fit",
}

// 动工许可证的固定字段表
func permitToWorkFields() []FieldDefinition {
	fields := []FieldDefinition{
		scalar("ptw_permit_no", "Permit No", ValueText, true, "Permit No:", "Date:"),
		scalar("ptw_date", "Date", ValueDate, true, "Date:", ""),
		selectField("ptw_permit_type", "Type of Work", true, "Type of Work:", "", []string{
			"Hot Work", "Cold Work", "Electrical", "Excavation", "Lifting", "Demolition",
		}),
		scalar("ptw_location", "Work Location", ValueText, true, "Work Location:", ""),
		scalar("ptw_description", "Description of Work", ValueText, true, "Description of Work:", ""),
		// 选项由外部名单数据在展示层补充
		selectField("ptw_job", "Job Reference", false, "Job Reference:", "", nil),
	}

	fields = append(fields, checkboxRows("ptw_decl%02d", "D%d.", permitDeclarations)...)

	fields = append(fields,
		scalar("ptw_applicant_name", "Applicant Name", ValueText, true, "Applicant Name:", ""),
		scalar("ptw_applicant_sign", "Applicant Signature", ValueSignature, true, "Applicant Signature:", ""),
		scalar("ptw_issuer_sign", "Issuer Signature", ValueSignature, true, "Issuer Signature:", ""),
		scalar("ptw_ref_photo", "Reference Photo", ValueImage, false, "Reference Photo:", ""),
	)
	return fields
}

// 签发声明项，顺序与模板中的 D1..D6 行号一致
var permitDeclarations = []string{
	"Work area inspected before issue",
	"Isolations completed and tagged",
	"Gas test conducted where required",
	"Fire watch assigned",
	"Tools and equipment inspected",
	"Workers briefed on hazards",
}
