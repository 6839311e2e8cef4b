// cmd/pinprobe/main.go
package main

import (
	"os"
	"time"

	"iopin-go/internal/platform"
	"iopin-go/internal/platform/setups"
	"iopin-go/internal/probe"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[pinprobe] boot")

	setup := setups.Default
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			println("[pinprobe] open setup:", err.Error())
			os.Exit(1)
		}
		setup, err = setups.Decode(f)
		f.Close()
		if err != nil {
			println("[pinprobe] decode setup:", err.Error())
			os.Exit(1)
		}
	}

	set := platform.Default()
	for _, n := range set.Names() {
		b, _ := set.Lookup(n)
		println("[pinprobe] backend", n, b.Name(), b.Capabilities().String())
	}

	reports := probe.Run(setup, set)
	for _, r := range reports {
		printReport(r)
	}
	exact, down, failed := probe.Summary(reports)
	println("[pinprobe] exact:", exact, "downgraded:", down, "failed:", failed)
	if failed > 0 {
		os.Exit(2)
	}
}

// Uses builtin println to avoid fmt overhead on MCU builds.
func printReport(r probe.Report) {
	errS := "-"
	if r.Err != nil {
		errS = r.Err.Error()
	}
	check := "-"
	if r.Checked {
		check = "fail"
		if r.CheckOK {
			check = "pass"
		}
	}
	println(
		"[pinprobe]", r.Name,
		"backend="+r.Backend, "pin=", r.Pin,
		"requested="+r.Res.Requested.String(),
		"resolved="+r.Res.Resolved.String(),
		"status="+r.Status.String(),
		"check="+check,
		"level=", r.Level,
		"err="+errS,
	)
}
