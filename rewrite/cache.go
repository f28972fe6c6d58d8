package rewrite

import (
	"fmt"

	"github.com/lsynth/lsynth/exact"
	"github.com/lsynth/lsynth/ttable"
	"github.com/lsynth/lsynth/xmg"
)

// TemplateFor returns the minimum-gate XMG realizing canon (a truth table
// already in NPN-canonical form, inputs x0..x_{n-1}, single output),
// synthesizing it via exact.Synthesize on first sight and caching the
// result for every later cut that canonicalizes to the same class.
func (c *Cache) TemplateFor(canon ttable.TT) (*xmg.XMG, error) {
	k := canonKey(canon)

	c.mu.Lock()
	if tmpl, ok := c.templates[k]; ok {
		c.mu.Unlock()
		return tmpl, nil
	}
	c.mu.Unlock()

	tmpl, err := exact.Synthesize(canon, canon.NumVars())
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.templates[k]; ok {
		return existing, nil
	}
	c.templates[k] = tmpl
	return tmpl, nil
}

// canonKey returns a string uniquely identifying f's variable count and
// row bits, used as the cache key. f is expected to carry at most 6
// variables (ttable.Canonicalize's own ceiling), so its 2^n rows always
// fit a single uint64.
func canonKey(f ttable.TT) string {
	var v uint64
	for i := uint(0); i < f.Size(); i++ {
		if f.Bit(i) {
			v |= uint64(1) << i
		}
	}
	return fmt.Sprintf("%d:%x", f.NumVars(), v)
}
