package intake

import "strings"

// TriggerPolicy decides, per chat turn, whether the conversation has reached
// the point where a full project extraction should be attempted instead of
// another clarifying exchange. The decision is recomputed from scratch every
// turn; nothing is stored between calls.
type TriggerPolicy interface {
	ShouldExtract(message string, historyLength int) bool
}

// KeywordPolicy fires when the newest message contains a trigger keyword or
// the conversation already has MinHistory prior turns. Deliberately
// approximate: it favors forward progress over precision.
type KeywordPolicy struct {
	Keywords   []string
	MinHistory int
}

func NewKeywordPolicy() *KeywordPolicy {
	return &KeywordPolicy{
		Keywords:   []string{"generate", "create", "litepaper"},
		MinHistory: 2,
	}
}

func (p *KeywordPolicy) ShouldExtract(message string, historyLength int) bool {
	if historyLength >= p.MinHistory {
		return true
	}

	lowered := strings.ToLower(message)
	for _, keyword := range p.Keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
