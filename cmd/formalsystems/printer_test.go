package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexprengere/FormalSystems/pkg/formalsystems"
)

func TestPrinterTurnStepShape(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Turn(1, []*formalsystems.Theorem{formalsystems.NewTheorem("MI", formalsystems.AxiomProducer)})
	assert.Contains(t, buf.String(), "STEP 1: MI")
}

func TestPrinterTurnBucketShape(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Turn(2, []*formalsystems.Theorem{formalsystems.NewTheorem("MII", formalsystems.AxiomProducer)})
	assert.Contains(t, buf.String(), "=== BUCKET 2: MII")
}

func TestPrinterProductionAndFailedAttempt(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	r, _ := formalsystems.CompileRule("double", "x is .*, Mx => Mxx")
	mi := formalsystems.NewTheorem("MI", formalsystems.AxiomProducer)
	mii := formalsystems.NewTheorem("MII", r.Body, mi)

	p.Production(r, []*formalsystems.Theorem{mi}, []*formalsystems.Theorem{mii})
	assert.Contains(t, buf.String(), "P Mx => Mxx for [MI] gives MII")

	buf.Reset()
	p.FailedAttempt(r, []*formalsystems.Theorem{mi})
	assert.Contains(t, buf.String(), ". Mx => Mxx for [MI]")
}

func TestPrinterQuietSuppressesProductionLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Quiet = true
	r, _ := formalsystems.CompileRule("double", "x is .*, Mx => Mxx")
	mi := formalsystems.NewTheorem("MI", formalsystems.AxiomProducer)

	p.Production(r, []*formalsystems.Theorem{mi}, []*formalsystems.Theorem{mi})
	p.FailedAttempt(r, []*formalsystems.Theorem{mi})
	assert.Empty(t, buf.String())
}

func TestPrinterDerivationNotFound(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Derivation("ZZZ", nil, false)
	assert.Contains(t, buf.String(), "ZZZ not found")
}
