package prompt

// Mermaid asks for a mermaid flowchart of the transaction described by the
// contract. Stance-independent.
func Mermaid(documentText string, l Language) string {
	t := mermaidZH
	if Normalize(l) == English {
		t = mermaidEN
	}
	return fill(t, "{{document}}", documentText)
}

// Overview asks for the objective structured summary of the contract.
// Stance-independent.
func Overview(documentText string, l Language) string {
	t := overviewZH
	if Normalize(l) == English {
		t = overviewEN
	}
	return fill(t, "{{document}}", documentText)
}

// FoundationAudit covers text accuracy, format, clarity and consistency.
func FoundationAudit(documentText, stance, extra string, l Language) string {
	t := foundationZH
	if Normalize(l) == English {
		t = foundationEN
	}
	return fill(t, "{{document}}", documentText, "{{stance}}", stance, "{{extra}}", extra)
}

// BusinessAudit covers the six business-terms review points.
func BusinessAudit(documentText, stance, extra string, l Language) string {
	t := businessZH
	if Normalize(l) == English {
		t = businessEN
	}
	return fill(t, "{{document}}", documentText, "{{stance}}", stance, "{{extra}}", extra)
}

// LegalAudit covers the ten legal-terms review points.
func LegalAudit(documentText, stance, extra string, l Language) string {
	t := legalZH
	if Normalize(l) == English {
		t = legalEN
	}
	return fill(t, "{{document}}", documentText, "{{stance}}", stance, "{{extra}}", extra)
}

// AuditSummary depends on the detailed findings of the three audit stages
// and must only be built after they complete.
func AuditSummary(documentText, stance, detailedFindings string, l Language) string {
	t := summaryZH
	if Normalize(l) == English {
		t = summaryEN
	}
	return fill(t, "{{document}}", documentText, "{{stance}}", stance, "{{findings}}", detailedFindings)
}

// IdentifyStance asks the model for a JSON object describing parties,
// contract type and stance options.
func IdentifyStance(documentText string, l Language) string {
	t := identifyStanceZH
	if Normalize(l) == English {
		t = identifyStanceEN
	}
	return fill(t, "{{document}}", documentText)
}
