// SPDX-License-Identifier: MIT

package perm

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the permutation as its image array.
func (p Permutation) MarshalJSON() ([]byte, error) {
	if p.mapping == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(p.mapping)
}

// UnmarshalJSON decodes an image array and validates it like New.
func (p *Permutation) UnmarshalJSON(data []byte) error {
	var m []int
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("perm: decode mapping: %w", err)
	}
	q, err := New(m)
	if err != nil {
		return err
	}
	*p = q

	return nil
}
