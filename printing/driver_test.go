package printing

import (
	"context"
	"strings"
	"testing"
)

func TestDriverPrintSpoolsAndRuns(t *testing.T) {
	tr := NewDriverTransport()
	tr.Cmd = "true" // spooler falso que siempre acepta

	res := tr.Print(context.Background(), "EPSON-TM20", Payload{Header: "X", Text: "y"})
	if !res.Success {
		t.Fatalf("print falló: %s", res.Error)
	}
}

func TestDriverPrintSpoolerFailure(t *testing.T) {
	tr := NewDriverTransport()
	tr.Cmd = "false"

	res := tr.Print(context.Background(), "EPSON-TM20", Payload{Header: "X", Text: "y"})
	if res.Success {
		t.Fatal("se esperaba falla del spooler")
	}
	if res.Error == "" {
		t.Fatal("la falla debe traer detalle")
	}
}

func TestDriverRequiresPrinterName(t *testing.T) {
	tr := NewDriverTransport()

	res := tr.Print(context.Background(), "", Payload{Header: "X", Text: "y"})
	if res.Success {
		t.Fatal("sin nombre de impresora debe fallar antes de spoolear")
	}
}

func TestDriverDocumentLayout(t *testing.T) {
	tr := NewDriverTransport()
	doc := tr.document(Payload{Header: "CABECERA", Text: "cuerpo", Footer: "pie"})

	hi := strings.Index(doc, "CABECERA")
	bi := strings.Index(doc, "cuerpo")
	fi := strings.Index(doc, "pie")
	if hi < 0 || bi < 0 || fi < 0 || !(hi < bi && bi < fi) {
		t.Fatalf("documento desordenado:\n%s", doc)
	}
}
