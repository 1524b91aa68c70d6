package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/strview"
	"github.com/sirupsen/logrus"
)

// Parses a config-style payload in a tight loop and writes a heap
// profile showing that the parse path does not allocate.
func main() {
	f, err := os.Create("mem.prof")
	if err != nil {
		logrus.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	payload := []byte("host=192.168.0.7\nport=8080\nname=strview demo\nretries=3\n")
	scratch := make([]byte, 64)

	for i := 0; i < 10000; i++ {
		parseLines(payload, scratch)
	}

	// One logged pass so the output is visible.
	rest := strview.FromBytes(payload)
	for rest.Len() > 0 {
		var line strview.View
		line, rest = nextLine(rest)
		key, after := line.SplitAtByte('=')
		if key.IsNotFound() {
			logrus.Warnf("skipping line without '=': %q", line.String())
			continue
		}
		val := after.Slice(1, strview.End).Trim(strview.IsSpace)
		logrus.Infof("parsed key=%s value=%s", key.String(), val.String())
	}

	if err := pprof.WriteHeapProfile(f); err != nil {
		logrus.Errorf("write heap profile: %v", err)
	}
	logrus.Info("heap profile written to mem.prof")
}

// nextLine peels one line off v. The final unterminated line is
// returned as-is.
func nextLine(v strview.View) (line, rest strview.View) {
	line, after := v.SplitAtByte('\n')
	if line.IsNotFound() {
		return v, strview.Empty
	}
	return line, after.Slice(1, strview.End)
}

// parseLines splits every key=value line and re-assembles the pairs
// into scratch through the append cursor. Returns the bytes written so
// the loop body cannot be optimized away.
func parseLines(payload, scratch []byte) int {
	total := 0
	rest := strview.FromBytes(payload)
	for rest.Len() > 0 {
		var line strview.View
		line, rest = nextLine(rest)
		key, after := line.SplitAtByte('=')
		if key.IsNotFound() {
			continue
		}
		val := after.Slice(1, strview.End).Trim(strview.IsSpace)
		dst := strview.MutFromBuf(scratch)
		dst = dst.Append(key)
		dst = dst.Append(val)
		total += len(scratch) - dst.Cap()
	}
	return total
}
