package calc

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/rusty-server/pkg/tools"
)

func TestParseOperation(t *testing.T) {
	Convey("Given the synonym table", t, func() {
		cases := map[string]Operation{
			"add": Add, "addition": Add, "+": Add,
			"subtract": Subtract, "subtraction": Subtract, "-": Subtract,
			"multiply": Multiply, "multiplication": Multiply, "*": Multiply,
			"divide": Divide, "division": Divide, "/": Divide,
		}

		Convey("Every spelling maps to its operation", func() {
			for name, want := range cases {
				op, err := ParseOperation(name)
				So(err, ShouldBeNil)
				So(op, ShouldEqual, want)
			}
		})

		Convey("Matching ignores case", func() {
			for _, name := range []string{"ADD", "Add", "add", "aDdItIoN"} {
				op, err := ParseOperation(name)
				So(err, ShouldBeNil)
				So(op, ShouldEqual, Add)
			}
		})

		Convey("Anything else is an unknown operation", func() {
			for _, name := range []string{"mod", "", " add", "plus", "%", "add "} {
				_, err := ParseOperation(name)
				So(err, ShouldEqual, ErrUnknownOperation)
			}
		})
	})
}

func TestApply(t *testing.T) {
	Convey("Given two operands", t, func() {
		Convey("The arithmetic matches the operators", func() {
			sum, err := Add.Apply(2, 3)
			So(err, ShouldBeNil)
			So(sum, ShouldEqual, 5.0)

			diff, err := Subtract.Apply(2, 3)
			So(err, ShouldBeNil)
			So(diff, ShouldEqual, -1.0)

			product, err := Multiply.Apply(2.5, 4)
			So(err, ShouldBeNil)
			So(product, ShouldEqual, 10.0)

			quotient, err := Divide.Apply(10, 4)
			So(err, ShouldBeNil)
			So(quotient, ShouldEqual, 2.5)
		})

		Convey("Dividing by zero always fails", func() {
			for _, a := range []float64{10, 0, -3, math.Inf(1)} {
				_, err := Divide.Apply(a, 0)
				So(err, ShouldEqual, ErrDivisionByZero)
			}

			_, err := Divide.Apply(1, math.Copysign(0, -1))
			So(err, ShouldEqual, ErrDivisionByZero)
		})

		Convey("The zero value is not an operation", func() {
			_, err := Operation(0).Apply(1, 2)
			So(err, ShouldEqual, ErrUnknownOperation)
		})
	})
}

func TestErrors(t *testing.T) {
	Convey("Domain errors are invalid parameters with the client message", t, func() {
		So(errors.Is(ErrDivisionByZero, tools.ErrInvalidParams), ShouldBeTrue)
		So(errors.Is(ErrUnknownOperation, tools.ErrInvalidParams), ShouldBeTrue)
		So(ErrDivisionByZero.Error(), ShouldEqual, "Division by zero is not allowed")
		So(ErrUnknownOperation.Error(), ShouldEqual, "Unknown operation. Supported operations: add, subtract, multiply, divide")
	})
}

func TestRequest(t *testing.T) {
	Convey("Given a calculator request", t, func() {
		Convey("It formats with the operation as sent", func() {
			req := Request{Operation: "+", A: 2, B: 3}
			result, err := req.Evaluate()
			So(err, ShouldBeNil)
			So(req.Format(result), ShouldEqual, "2 + 3 = 5")

			req = Request{Operation: "DIVIDE", A: 10, B: 4}
			result, err = req.Evaluate()
			So(err, ShouldBeNil)
			So(req.Format(result), ShouldEqual, "10 DIVIDE 4 = 2.5")
		})

		Convey("Unknown operations fail regardless of operands", func() {
			_, err := Request{Operation: "mod", A: 5, B: 2}.Evaluate()
			So(err, ShouldEqual, ErrUnknownOperation)

			_, err = Request{Operation: "mod", A: 0, B: 0}.Evaluate()
			So(err, ShouldEqual, ErrUnknownOperation)
		})

		Convey("Division by zero fails even when a is zero", func() {
			_, err := Request{Operation: "divide", A: 0, B: 0}.Evaluate()
			So(err, ShouldEqual, ErrDivisionByZero)
		})
	})
}

func TestFormatNumber(t *testing.T) {
	Convey("Numbers render in their shortest exact form", t, func() {
		So(FormatNumber(2), ShouldEqual, "2")
		So(FormatNumber(-1), ShouldEqual, "-1")
		So(FormatNumber(2.5), ShouldEqual, "2.5")
		a, b := 0.1, 0.2
		So(FormatNumber(a+b), ShouldEqual, "0.30000000000000004")
		So(FormatNumber(1e21), ShouldEqual, "1000000000000000000000")
		So(FormatNumber(math.Copysign(0, -1)), ShouldEqual, "-0")
		So(FormatNumber(math.Inf(1)), ShouldEqual, "inf")
		So(FormatNumber(math.Inf(-1)), ShouldEqual, "-inf")
		So(FormatNumber(math.NaN()), ShouldEqual, "NaN")
	})
}
