package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, true)

	p.Line("plain %d", 7)
	p.Successf("created comment %d", 12)
	p.Warningf("heads up")
	p.Errorf("it broke")

	stdout := out.String()
	stderr := errOut.String()

	if !strings.Contains(stdout, "plain 7") {
		t.Errorf("stdout missing plain line: %q", stdout)
	}
	if !strings.Contains(stdout, "Success: created comment 12") {
		t.Errorf("stdout missing success line: %q", stdout)
	}
	if !strings.Contains(stderr, "Warning: heads up") {
		t.Errorf("stderr missing warning: %q", stderr)
	}
	if !strings.Contains(stderr, "Error: it broke") {
		t.Errorf("stderr missing error: %q", stderr)
	}
	if strings.Contains(stdout, "Error:") {
		t.Error("errors must not go to stdout")
	}

	// buffers are not terminals, so no escape codes even with color on
	if strings.Contains(stdout, "\x1b[") || strings.Contains(stderr, "\x1b[") {
		t.Error("expected no ANSI escapes when writing to a buffer")
	}
}

func TestStyledStatusPassthrough(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, false)

	if got := p.StyledStatus("spam"); got != "spam" {
		t.Errorf("StyledStatus without color = %q", got)
	}
}

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, TableOptions{Header: []string{"id", "author", "status"}})
	table.AddRow("1", "Ada", "approved")
	table.AddRow("2", "Grace", "hold")
	table.Render()

	got := buf.String()
	for _, want := range []string{"ID", "AUTHOR", "STATUS", "Ada", "Grace", "hold"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestTableEmptyRendersNothing(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, TableOptions{Header: []string{"id"}})
	table.Render()

	if buf.Len() != 0 {
		t.Errorf("empty table rendered output: %q", buf.String())
	}
}
