package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/milk9111/shroomydoomy/ecs/entity"
	"golang.design/x/clipboard"
)

// Clipboard carries copied game objects as JSON records. Without a system
// clipboard it keeps the last copy in memory.
type Clipboard struct {
	system bool
	local  []byte
}

// NewClipboard attaches to the system clipboard when one is available.
func NewClipboard() (*Clipboard, error) {
	if err := clipboard.Init(); err != nil {
		return &Clipboard{}, err
	}
	return &Clipboard{system: true}, nil
}

func (c *Clipboard) Put(rec entity.Record) error {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	c.local = b
	if c.system {
		clipboard.Write(clipboard.FmtText, b)
	}
	return nil
}

func (c *Clipboard) Get() (entity.Record, error) {
	b := c.local
	if c.system {
		if sys := clipboard.Read(clipboard.FmtText); len(sys) > 0 {
			b = sys
		}
	}
	if len(b) == 0 {
		return entity.Record{}, errors.New("clipboard is empty")
	}
	var rec entity.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return entity.Record{}, fmt.Errorf("clipboard does not hold a game object: %w", err)
	}
	return rec, nil
}
