package review

import (
	"encoding/json"
	"strings"
)

// ContractParty is one party identified in the contract text.
type ContractParty struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

// StanceOption is one recommended negotiating stance with its strategy.
type StanceOption struct {
	Stance      string   `json:"stance"`
	Description string   `json:"description"`
	KeyPoints   []string `json:"key_points"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	Suggestions []string `json:"suggestions"`
}

// StanceIdentification is the outcome of the stance identification call.
type StanceIdentification struct {
	Parties            []ContractParty `json:"parties"`
	ContractType       string          `json:"contract_type"`
	PrimaryOption      StanceOption    `json:"primary_option"`
	AlternativeOptions []StanceOption  `json:"alternative_options"`
}

// AllOptions returns the primary option followed by the alternatives.
func (s StanceIdentification) AllOptions() []StanceOption {
	return append([]StanceOption{s.PrimaryOption}, s.AlternativeOptions...)
}

// stanceWire is the shape the identification prompt asks the model to emit.
type stanceWire struct {
	Parties      []ContractParty `json:"parties"`
	ContractType string          `json:"contract_type"`
	Options      []StanceOption  `json:"options"`
}

// DecodeStance parses the model's stance-identification response. The prompt
// demands bare JSON but models occasionally wrap it in a code fence, so
// fences are stripped first. Anything unparseable falls back to the default
// identification rather than failing the flow.
func DecodeStance(response string, chinese bool) StanceIdentification {
	raw := stripCodeFence(response)
	var wire stanceWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return DefaultStance(chinese)
	}
	out := StanceIdentification{
		Parties:      wire.Parties,
		ContractType: strings.TrimSpace(wire.ContractType),
	}
	def := DefaultStance(chinese)
	if len(out.Parties) == 0 {
		out.Parties = def.Parties
	}
	if out.ContractType == "" {
		out.ContractType = def.ContractType
	}
	options := make([]StanceOption, 0, len(wire.Options))
	for _, o := range wire.Options {
		if strings.TrimSpace(o.Stance) == "" {
			continue
		}
		options = append(options, o)
	}
	if len(options) == 0 {
		options = def.AllOptions()
	}
	out.PrimaryOption = options[0]
	out.AlternativeOptions = options[1:]
	return out
}

// DefaultStance is the fallback when the model's answer cannot be parsed:
// the generic two-party contract with the first/second party stances.
func DefaultStance(chinese bool) StanceIdentification {
	if chinese {
		return StanceIdentification{
			Parties: []ContractParty{
				{Name: "甲方", Role: "甲方", Description: "合同一方当事人"},
				{Name: "乙方", Role: "乙方", Description: "合同另一方当事人"},
			},
			ContractType: "通用合同",
			PrimaryOption: StanceOption{
				Stance:      "作为甲方",
				Description: "以甲方身份参与合同谈判，优先保护自身权益",
				KeyPoints:   []string{"明确权益和责任", "争取有利条款"},
				Pros:        []string{"议价权较强", "条款相对宽松"},
				Cons:        []string{"需承担风险", "面临强硬要求"},
				Suggestions: []string{"明确核心条款", "制定谈判策略"},
			},
			AlternativeOptions: []StanceOption{{
				Stance:      "作为乙方",
				Description: "以乙方身份参与合同谈判，平衡各方权益",
				KeyPoints:   []string{"保护合理权益", "明确义务范围"},
				Pros:        []string{"可限制无理要求", "支付条款相对有利"},
				Cons:        []string{"面临强势谈判", "可能遭遇压力"},
				Suggestions: []string{"提出合理诉求", "灵活协商"},
			}},
		}
	}
	return StanceIdentification{
		Parties: []ContractParty{
			{Name: "Party A", Role: "Party A", Description: "One party to the contract"},
			{Name: "Party B", Role: "Party B", Description: "The other party to the contract"},
		},
		ContractType: "General contract",
		PrimaryOption: StanceOption{
			Stance:      "As Party A",
			Description: "Negotiate as Party A, prioritizing your own interests",
			KeyPoints:   []string{"Clarify rights and responsibilities", "Push for favorable terms"},
			Pros:        []string{"Stronger bargaining position", "More relaxed obligations"},
			Cons:        []string{"Bears more risk", "May face hard demands"},
			Suggestions: []string{"Pin down the core terms", "Prepare a negotiation strategy"},
		},
		AlternativeOptions: []StanceOption{{
			Stance:      "As Party B",
			Description: "Negotiate as Party B, balancing the interests of both sides",
			KeyPoints:   []string{"Protect reasonable interests", "Bound the scope of obligations"},
			Pros:        []string{"Can push back on unreasonable demands", "Payment terms tend to favor you"},
			Cons:        []string{"Faces a stronger counterparty", "May be under pressure"},
			Suggestions: []string{"Raise reasonable requests", "Negotiate flexibly"},
		}},
	}
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag, if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the language tag line.
		first := strings.TrimSpace(s[:idx])
		if first == "" || !strings.ContainsAny(first, "{[") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
