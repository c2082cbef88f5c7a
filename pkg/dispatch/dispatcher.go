// pkg/dispatch/dispatcher.go
package dispatch

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/xkilldash9x/vector2/pkg/typecache"
	"github.com/xkilldash9x/vector2/pkg/vector"
)

type builderFunc func(template any, v vector.Vector2) any

// Dispatcher evaluates operators on untyped operands. Results of vector
// arithmetic are rebuilt as the more specific of the two operand types when
// a builder for that type has been registered; otherwise they are plain
// vector.Vector2 values. Scalar results are vector.Scalar.
type Dispatcher struct {
	logger *zap.Logger

	mu       sync.RWMutex
	builders map[reflect.Type]builderFunc
}

// New creates a Dispatcher with no registered wrapper types.
func New(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		logger:   logger.Named("dispatch"),
		builders: make(map[reflect.Type]builderFunc),
	}
}

// Register teaches d how to rebuild a wrapper type T from a template operand
// of that type and the components of a result.
func Register[T vector.Vectorer](d *Dispatcher, build func(template T, v vector.Vector2) T) {
	t := reflect.TypeFor[T]()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.builders[t] = func(template any, v vector.Vector2) any {
		return build(template.(T), v)
	}
	d.logger.Debug("Registered vector type.", zap.Stringer("type", t))
}

// Eval applies op to left and right. The forward form, left op right, is
// tried first. When the left operand is not a vector or cannot take the right
// operand, the reflected form is tried for every operator but Div. If neither
// applies, the error wraps vector.ErrInvalidArgument.
func (d *Dispatcher) Eval(op Operator, left, right any) (any, error) {
	if lv, ok := left.(vector.Vectorer); ok {
		result, err := d.forward(op, lv, left, right)
		if err == nil || !errors.Is(err, vector.ErrNotApplicable) {
			return result, err
		}
		d.logger.Debug("Forward operation not applicable.", zap.Stringer("op", op), zap.Error(err))
	}

	if rv, ok := right.(vector.Vectorer); ok && op.reflectable() {
		result, err := d.reflected(op, rv, left, right)
		if err == nil || !errors.Is(err, vector.ErrNotApplicable) {
			return result, err
		}
	}

	return nil, fmt.Errorf("%w: unsupported operand types for %s: %T and %T",
		vector.ErrInvalidArgument, op, left, right)
}

// Negate returns -operand, keeping a registered wrapper type.
func (d *Dispatcher) Negate(operand any) (any, error) {
	v, ok := operand.(vector.Vectorer)
	if !ok {
		return nil, fmt.Errorf("%w: bad operand type for negation: %T", vector.ErrInvalidArgument, operand)
	}
	return d.rebuild(reflect.TypeOf(operand), operand, v.Vector().Neg()), nil
}

func (d *Dispatcher) forward(op Operator, lv vector.Vectorer, left, right any) (any, error) {
	v := lv.Vector()
	switch op {
	case Add:
		sum, err := v.AddAny(right)
		if err != nil {
			return nil, err
		}
		return d.wrapBinary(left, right, sum), nil
	case Sub:
		diff, err := v.SubAny(right)
		if err != nil {
			return nil, err
		}
		return d.wrapBinary(left, right, diff), nil
	case Dot:
		dot, err := v.DotAny(right)
		if err != nil {
			return nil, err
		}
		return vector.Scalar(dot), nil
	case Mul:
		return d.multiply(v, left, right)
	case Div:
		quot, err := v.DivAny(right)
		if err != nil {
			return nil, err
		}
		return d.rebuild(reflect.TypeOf(left), left, quot), nil
	}
	return nil, fmt.Errorf("%w: unknown operator %s", vector.ErrInvalidArgument, op)
}

func (d *Dispatcher) reflected(op Operator, rv vector.Vectorer, left, right any) (any, error) {
	v := rv.Vector()
	switch op {
	case Add:
		sum, err := v.AddAny(left)
		if err != nil {
			return nil, err
		}
		return d.wrapBinary(left, right, sum), nil
	case Sub:
		lhs, err := vector.ConvertAny(left)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", vector.ErrNotApplicable, err)
		}
		return d.wrapBinary(left, right, lhs.Sub(v)), nil
	case Dot:
		dot, err := v.DotAny(left)
		if err != nil {
			return nil, err
		}
		return vector.Scalar(dot), nil
	case Mul:
		return d.multiply(v, right, left)
	}
	return nil, fmt.Errorf("%w: no reflected form of %s", vector.ErrNotApplicable, op)
}

// multiply evaluates vec * other where vec came from the operand self.
func (d *Dispatcher) multiply(vec vector.Vector2, self, other any) (any, error) {
	product, err := vec.MulAny(other)
	if err != nil {
		return nil, err
	}
	if scaled, ok := product.(vector.Vector2); ok {
		return d.rebuild(reflect.TypeOf(self), self, scaled), nil
	}
	return product, nil
}

// wrapBinary rebuilds v as the more specific operand type.
func (d *Dispatcher) wrapBinary(left, right any, v vector.Vector2) any {
	lt, rt := reflect.TypeOf(left), reflect.TypeOf(right)
	target := typecache.Lowest(lt, rt)
	template := left
	if target != lt {
		template = right
	}
	return d.rebuild(target, template, v)
}

func (d *Dispatcher) rebuild(t reflect.Type, template any, v vector.Vector2) any {
	d.mu.RLock()
	build, ok := d.builders[t]
	d.mu.RUnlock()
	if !ok {
		return v
	}
	return build(template, v)
}
