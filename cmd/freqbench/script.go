package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

type opKind int

const (
	opPut opKind = iota
	opGet
)

type op struct {
	kind opKind
	key  string
	val  string
}

func (o op) String() string {
	if o.kind == opPut {
		return fmt.Sprintf("put(%s, %s)", o.key, o.val)
	}
	return fmt.Sprintf("get(%s)", o.key)
}

// parseScript reads comma separated ops: "p:<key>=<val>" or "g:<key>".
func parseScript(s string) ([]op, error) {
	var ops []op
	for i, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		kind, rest, ok := strings.Cut(raw, ":")
		if !ok || rest == "" {
			return nil, fmt.Errorf("op %d %q: expected p:<key>=<val> or g:<key>", i, raw)
		}
		switch kind {
		case "p":
			key, val, ok := strings.Cut(rest, "=")
			if !ok || key == "" {
				return nil, fmt.Errorf("op %d %q: put needs <key>=<val>", i, raw)
			}
			ops = append(ops, op{kind: opPut, key: key, val: val})
		case "g":
			ops = append(ops, op{kind: opGet, key: rest})
		default:
			return nil, fmt.Errorf("op %d %q: unknown op %q", i, raw, kind)
		}
	}
	return ops, nil
}

// randomOps draws n ops over keys distinct keys. Low key numbers are drawn
// more often, so frequencies spread out the way real traffic does.
func randomOps(n, keys int, seed uint64) []op {
	if n <= 0 {
		return nil
	}
	keys = max(keys, 2)

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	zipf := rand.NewZipf(rng, 1.2, 1, uint64(keys-1))

	ops := make([]op, n)
	for i := range ops {
		key := "k" + strconv.FormatUint(zipf.Uint64(), 10)
		if rng.IntN(4) == 0 {
			ops[i] = op{kind: opPut, key: key, val: strconv.Itoa(i)}
		} else {
			ops[i] = op{kind: opGet, key: key}
		}
	}
	return ops
}
