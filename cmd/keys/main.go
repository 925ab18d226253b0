package main

import (
	"context"
	"fmt"

	"github.com/xyproto/typewriter"
)

func main() {
	escCount := 0
	layout := typewriter.US()
	tty, err := typewriter.NewTTYScanner("", layout)
	if err != nil {
		panic(err)
	}
	defer tty.Close()
	esc, _ := layout.Code(typewriter.VKEsc)
	resolver := typewriter.NewResolver(layout)
	ctx := context.Background()
	for {
		t, err := tty.Scan(ctx)
		if err != nil {
			break
		}
		ev := t.Event()
		act, err := resolver.Resolve(ev)
		if err != nil {
			fmt.Printf("%s: %v\r\n", ev, err)
			continue
		}
		fmt.Printf("%#02x %-14s %-9s %s\r\n", byte(ev), ev, act.Kind, act.Key)
		if t.Press && !t.Modifier && t.Code == esc {
			if escCount == 0 {
				fmt.Print("Press ESC again to exit\r\n")
			} else {
				fmt.Print("bye!\r\n")
			}
			escCount++
		}
		if escCount > 1 {
			break
		}
	}
}
