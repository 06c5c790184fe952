// memberdump drives a single member operation from the command line and
// prints the resulting cell plus any diagnostics raised — a hands-on
// inspection tool for the operations spec.md §6 catalogs, in the same
// spirit as the teacher's -eval/-obj-info flags on cmd/barn (adapted here:
// no database to load, the base/key/val are built from flags instead of
// looked up in a store).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"hhvm/diag"
	"hhvm/member"
	"hhvm/trace"
	"hhvm/value"
)

func main() {
	op := flag.String("op", "elem", "member operation: elem, elemd, elemu, newelem, setelem, setnewelem, setopelem, setopnewelem, incdecelem, incdecnewelem, unsetelem, issetemptyelem, prop, propd, setprop, setopprop, incdecprop, unsetprop, issetemptyprop, nullsafeprop")

	baseKind := flag.String("base-kind", "null", "base cell kind: null, uninit, bool, int, double, string, array, object")
	baseStr := flag.String("base-str", "", "base string/array-class value")
	baseInt := flag.Int64("base-int", 0, "base int value")
	baseBool := flag.Bool("base-bool", false, "base bool value")
	baseDouble := flag.Float64("base-double", 0, "base double value")

	keyKind := flag.String("key-kind", "string", "key cell kind: int or string")
	keyStr := flag.String("key-str", "", "key string value")
	keyInt := flag.Int64("key-int", 0, "key int value")

	valKind := flag.String("val-kind", "null", "rhs cell kind: null, bool, int, double, string")
	valStr := flag.String("val-str", "", "rhs string value")
	valInt := flag.Int64("val-int", 0, "rhs int value")

	prop := flag.String("prop", "", "property name, for Prop*/SetProp*/IncDecProp/UnsetProp/IssetEmptyProp ops")
	setOp := flag.String("setop", "plus", "compound-assignment operator: plus, minus, mul, div, mod, concat, and, or, xor, shl, shr")
	incDec := flag.String("incdec", "inc", "inc or dec")
	wantEmpty := flag.Bool("want-empty", false, "issetemptyelem/issetemptyprop: query empty() instead of isset()")
	setResult := flag.Bool("set-result", true, "setelem: tolerate a scalar-base failure instead of raising InvalidSetM")
	warn := flag.Bool("warn", false, "elemd: raise Undefined index on a genuine array-key miss")

	traceEnabled := flag.Bool("trace", false, "enable execution tracing to stderr")
	traceFilter := flag.String("trace-filter", "", "trace filter pattern (glob)")

	flag.Parse()

	if *traceEnabled {
		trace.Init(true, splitNonEmpty(*traceFilter), os.Stderr)
	} else {
		trace.Init(false, nil, nil)
	}

	base := buildScalarCell(*baseKind, *baseStr, *baseInt, *baseBool, *baseDouble)
	key := buildScalarCell(*keyKind, *keyStr, *keyInt, false, 0)
	val := buildScalarCell(*valKind, *valStr, *valInt, false, 0)

	sink := &diag.CollectSink{}
	ctx := member.Ctx{Sink: sink}

	trace.Enter(*op, base.Kind.String(), key.String())
	result, err := run(ctx, *op, &base, key, val, *prop, setOpKindFromFlag(*setOp), incDecOpFromFlag(*incDec), *wantEmpty, *setResult, *warn)
	trace.Exit(*op, result.String())

	if err != nil {
		if inv, ok := err.(*diag.InvalidSetM); ok {
			log.Fatalf("InvalidSetM: payload=%s", inv.Payload.String())
		}
		if fatal, ok := err.(*diag.Fatal); ok {
			log.Fatalf("Fatal(%s): %s", fatal.Code, fatal.Error())
		}
		log.Fatalf("error: %v", err)
	}

	fmt.Printf("result  = %s (kind=%s)\n", result.String(), result.Kind)
	fmt.Printf("base    = %s (kind=%s)\n", base.String(), base.Kind)
	for _, rec := range sink.Records {
		fmt.Printf("%s: %s\n", rec.Severity, rec.Text())
	}
}

func run(ctx member.Ctx, op string, base *value.Cell, key, val value.Cell, prop string, setOp member.SetOpKind, incDec member.IncDecOp, wantEmpty, setResult, warn bool) (value.Cell, error) {
	switch op {
	case "elem":
		return member.Elem(ctx, base, key), nil
	case "elemu":
		return member.ElemU(ctx, base, key), nil
	case "elemd":
		slot, err := member.ElemD(ctx, base, key, warn)
		if err != nil {
			return value.Cell{}, err
		}
		return *slot, nil
	case "newelem":
		slot, err := member.NewElem(ctx, base)
		if err != nil {
			return value.Cell{}, err
		}
		return *slot, nil
	case "setelem":
		return member.SetElem(ctx, base, key, val, setResult)
	case "setnewelem":
		if err := member.SetNewElem(ctx, base, val); err != nil {
			return value.Cell{}, err
		}
		return val, nil
	case "setopelem":
		return member.SetOpElem(ctx, base, key, setOp, val)
	case "setopnewelem":
		return member.SetOpNewElem(base, setOp, val)
	case "incdecelem":
		return member.IncDecElem(ctx, base, key, incDec)
	case "incdecnewelem":
		return member.IncDecNewElem(base, incDec)
	case "unsetelem":
		if err := member.UnsetElem(ctx, base, key); err != nil {
			return value.Cell{}, err
		}
		return value.Null(), nil
	case "issetemptyelem":
		return value.Bool(member.IssetEmptyElem(ctx, base, key, wantEmpty)), nil
	case "prop":
		return member.Prop(ctx, base, prop), nil
	case "propd":
		return *member.PropD(ctx, base, prop), nil
	case "setprop":
		return member.SetProp(ctx, base, prop, val), nil
	case "setopprop":
		return member.SetOpProp(base, prop, setOp, val), nil
	case "incdecprop":
		return member.IncDecProp(ctx, base, prop, incDec), nil
	case "unsetprop":
		member.UnsetProp(base, prop)
		return value.Null(), nil
	case "issetemptyprop":
		return value.Bool(member.IssetEmptyProp(base, prop, wantEmpty)), nil
	case "nullsafeprop":
		v, _ := member.NullSafeProp(ctx, base, prop)
		return v, nil
	default:
		return value.Null(), fmt.Errorf("unknown op %q", op)
	}
}

func buildScalarCell(kind, str string, i int64, b bool, d float64) value.Cell {
	switch kind {
	case "uninit":
		return value.Uninit()
	case "bool":
		return value.Bool(b)
	case "int":
		return value.Int(i)
	case "double":
		return value.Double(d)
	case "string":
		return value.Str(value.NewString(str))
	case "array":
		return value.Arr(value.NewArray())
	case "object":
		return value.Obj(value.NewObject(str))
	default:
		return value.Null()
	}
}

func setOpKindFromFlag(name string) member.SetOpKind {
	switch name {
	case "minus":
		return member.SetOpMinus
	case "mul":
		return member.SetOpMul
	case "div":
		return member.SetOpDiv
	case "mod":
		return member.SetOpMod
	case "concat":
		return member.SetOpConcat
	case "and":
		return member.SetOpAnd
	case "or":
		return member.SetOpOr
	case "xor":
		return member.SetOpXor
	case "shl":
		return member.SetOpShl
	case "shr":
		return member.SetOpShr
	default:
		return member.SetOpPlus
	}
}

func incDecOpFromFlag(name string) member.IncDecOp {
	if name == "dec" {
		return member.OpDec
	}
	return member.OpInc
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
