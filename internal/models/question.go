package models

import "encoding/json"

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

// Question is one positional item in a test. Only Type, Marks and Answer are
// interpreted by the grader; everything else is display data. Fields the
// service does not know about survive in Extra and round-trip unchanged.
type Question struct {
	Type    string         `bson:"type" json:"type"`
	Marks   float64        `bson:"marks" json:"marks"`
	Answer  string         `bson:"answer,omitempty" json:"answer,omitempty"`
	Prompt  string         `bson:"prompt,omitempty" json:"prompt,omitempty"`
	Options []Option       `bson:"options,omitempty" json:"options,omitempty"`
	Extra   map[string]any `bson:",inline" json:"-"`
}

type questionAlias Question

func (q Question) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(questionAlias(q))
	if err != nil {
		return nil, err
	}
	if len(q.Extra) == 0 {
		return base, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range q.Extra {
		if _, taken := merged[k]; !taken {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var alias questionAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, known := range []string{"type", "marks", "answer", "prompt", "options"} {
		delete(raw, known)
	}
	*q = Question(alias)
	if len(raw) > 0 {
		q.Extra = raw
	}
	return nil
}
