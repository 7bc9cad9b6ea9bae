package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/spf13/pflag"
)

// remapFlag collects repeated --remap SRC=DST values.
type remapFlag struct {
	table keys.RemapTable
}

var _ pflag.Value = (*remapFlag)(nil)

func newRemapFlag() *remapFlag {
	return &remapFlag{table: make(keys.RemapTable)}
}

func (f *remapFlag) String() string {
	pairs := make([]string, 0, len(f.table))
	for _, src := range f.table.Sources() {
		pairs = append(pairs, src+"="+f.table[src])
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// Set accepts "SRC=DST" or a comma separated list of them.
func (f *remapFlag) Set(value string) error {
	for _, pair := range strings.Split(value, ",") {
		src, dst, ok := strings.Cut(strings.TrimSpace(pair), "=")
		src, dst = strings.TrimSpace(src), strings.TrimSpace(dst)
		if !ok || src == "" || dst == "" {
			return fmt.Errorf("invalid remap %q (want SRC=DST, e.g. CapsLock=ControlLeft)", pair)
		}
		f.table[src] = dst
	}
	return nil
}

func (f *remapFlag) Type() string {
	return "SRC=DST"
}
