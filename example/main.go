// Command example walks a dict.Table through growth, shrinking and
// tombstones, printing the cell array after every step.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/theflywheel/dict"
)

// Color is an RGB triple used as the example value type.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("<%3d, %3d, %3d>", c.R, c.G, c.B)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "example: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	verbose := flag.Bool("v", false, "Log resize events")
	capacity := flag.Int("capacity", dict.MinCapacity, "Initial number of cells")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	ll := &slog.LevelVar{}
	ll.Set(slog.LevelInfo)
	if *verbose {
		ll.Set(slog.LevelDebug)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))

	out := colorable.NewColorableStdout()
	t := dict.New[*Color](dict.WithCapacity(*capacity), dict.WithLogger(logger))

	keys := []string{"cat", "dog", "penguin", "coyote", "tiger", "lion", "dolphin"}
	values := []*Color{
		{132, 211, 33},
		{121, 11, 56},
		{132, 53, 78},
		{55, 116, 65},
		{98, 210, 216},
		{75, 198, 166},
		{46, 15, 255},
	}

	fmt.Fprintln(out, "Table is empty:")
	if err := render(out, t); err != nil {
		return err
	}

	for i := 0; i < 6; i++ {
		t.Insert(keys[i], values[i])
	}
	fmt.Fprintln(out, "Inserted 6 key-value pairs")
	if err := render(out, t); err != nil {
		return err
	}

	t.Insert(keys[6], values[6])
	fmt.Fprintln(out, "The next insert grows the table")
	if err := render(out, t); err != nil {
		return err
	}

	fmt.Fprintln(out, "Get a value by key")
	fmt.Fprintf(out, "tiger : %v\n\n", t.Get("tiger"))

	for _, key := range []string{"cat", "penguin", "coyote", "lion", "dolphin"} {
		t.Remove(key)
	}
	fmt.Fprintln(out, "Removing enough pairs shrinks the table")
	if err := render(out, t); err != nil {
		return err
	}

	t.Insert("lion", values[5])
	t.Remove("tiger")
	fmt.Fprintln(out, "A removed pair leaves its hash behind")
	if err := render(out, t); err != nil {
		return err
	}

	lion, ok := t.Lookup("lion")
	if !ok {
		return errors.New("lion not found after reinsert")
	}
	fmt.Fprintf(out, "lion : %v\n\n", lion)

	logger.Info("done", "len", t.Len(), "cap", t.Cap(), "tombstones", t.Tombstones())
	return nil
}

// render prints one line per cell: index, state, hash, key and value.
func render(w io.Writer, t *dict.Table[*Color]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	for i, c := range t.Cells() {
		value := "NULL"
		if c.Value != nil {
			value = c.Value.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t: %s\t\n", i, c.State, c.Hash, c.Key, value)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}
