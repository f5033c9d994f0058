package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
)

type Keys struct{}

// Run is called by Kong when the keys command is executed.
func (k *Keys) Run() error {
	return k.Print(os.Stdout, keyevent.NewTranslator())
}

// Print writes one row per mapped host code, in code order.
func (k *Keys) Print(w io.Writer, tr *keyevent.Translator) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CODE\tNAME\tORDINAL")
	for _, code := range tr.Codes() {
		key, _ := tr.Lookup(code)
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\n", code, tr.NameOf(code), key)
	}
	return tw.Flush()
}
