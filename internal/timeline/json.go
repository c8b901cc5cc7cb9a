package timeline

import (
	"encoding/json"
	"fmt"

	"codecast/internal/block"
)

// MarshalJSON writes the block's own fields merged with the computed ones
// (type, start, duration and addedChars or panes), so consumers see the input
// block annotated with its placement. Keys are emitted in sorted order.
func (m BlockMetadata) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}
	raw, err := json.Marshal(m.Block)
	if err != nil {
		return nil, fmt.Errorf("marshal %s block: %w", m.Kind(), err)
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("marshal %s block: %w", m.Kind(), err)
	}

	set := func(key string, value any) error {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		fields[key] = encoded
		return nil
	}
	if err := set("type", m.Kind()); err != nil {
		return nil, err
	}
	if err := set("start", m.Start); err != nil {
		return nil, err
	}
	if err := set("duration", m.Duration); err != nil {
		return nil, err
	}
	switch m.Block.(type) {
	case block.Code:
		if err := set("addedChars", m.AddedChars); err != nil {
			return nil, err
		}
	case block.Layout:
		panes := m.Panes
		if panes == nil {
			panes = []PaneMetadata{}
		}
		if err := set("panes", panes); err != nil {
			return nil, err
		}
	}
	return json.Marshal(fields)
}
