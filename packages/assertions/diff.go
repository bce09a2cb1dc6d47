package assertions

import (
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultDiffContext is the number of unchanged lines kept around each
// change in line diffs.
const DefaultDiffContext = 1

var dumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// cyclicDumper renders self-referencing values, which spew only stops on
// when the cycle runs through a pointer.
var cyclicDumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                4,
}

func dumperFor(vals ...any) *spew.ConfigState {
	for _, v := range vals {
		if isCyclic(v) {
			return &cyclicDumper
		}
	}
	return &dumper
}

// Diff renders how actual differs from expected using DefaultDiffContext.
func Diff(actual, expected any) string {
	return DiffContext(actual, expected, DefaultDiffContext)
}

// DiffContext renders how actual differs from expected. Two strings get a
// unified line diff; anything else a cmp.Diff, falling back to a line diff
// of spew dumps when cmp cannot handle the values. Lines prefixed with "-"
// come from expected and "+" from actual. Equal values yield "".
func DiffContext(actual, expected any, context int) string {
	as, aok := actual.(string)
	es, eok := expected.(string)
	if aok && eok {
		return lineDiff(as, es, context)
	}
	return structDiff(actual, expected, context)
}

func structDiff(actual, expected any, context int) (out string) {
	if d := dumperFor(actual, expected); d == &cyclicDumper {
		return lineDiff(d.Sdump(actual), d.Sdump(expected), context)
	}
	defer func() {
		if recover() != nil {
			out = lineDiff(dumper.Sdump(actual), dumper.Sdump(expected), context)
		}
	}()
	return strings.TrimRight(cmp.Diff(expected, actual, exportAll), "\n")
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func lineDiff(actual, expected string, context int) string {
	if actual == expected {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  context,
	})
	if err != nil {
		return ""
	}
	return strings.TrimRight(diff, "\n")
}

// Dump renders v in full detail for verbose output.
func Dump(v any) string {
	return strings.TrimRight(dumperFor(v).Sdump(v), "\n")
}
