// SPDX-License-Identifier: MIT

package worksheet

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/matrixlab/activation"
	"github.com/katalvlaran/matrixlab/log"
	"github.com/katalvlaran/matrixlab/matrix"
)

// DefaultMaxDeterminantSize bounds det/inverse when no option overrides it.
const DefaultMaxDeterminantSize = 8

// Option configures a Runner.
type Option func(*Runner)

// WithSolver sets the determinant solver for det and inverse. nil keeps the default.
func WithSolver(s matrix.DeterminantSolver) Option {
	return func(r *Runner) {
		if s != nil {
			r.solver = s
		}
	}
}

// WithMaxDeterminantSize sets the largest n accepted by det and inverse.
// n <= 0 disables the guard.
func WithMaxDeterminantSize(n int) Option {
	return func(r *Runner) {
		r.maxDet = n
	}
}

// WithSeed makes every Run draw random matrices from a source seeded with seed.
// seed == 0 keeps the time-seeded default.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// Runner executes worksheets. A Runner holds no per-run state and may be
// reused; concurrent Runs are independent.
type Runner struct {
	solver matrix.DeterminantSolver
	maxDet int
	seed   int64
}

// NewRunner returns a Runner with the cofactor solver and the default size guard.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		solver: matrix.CofactorSolver{},
		maxDet: DefaultMaxDeterminantSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Result is the outcome of one step.
type Result struct {
	Index  int
	Op     string
	Matrix *matrix.Dense // scalar results are held as 1×1
	Scalar bool          // det
	Saved  string
}

// Value returns the scalar of a 1×1 result, ErrNotScalar otherwise.
func (r Result) Value() (float64, error) {
	if r.Matrix == nil || r.Matrix.Rows() != 1 || r.Matrix.Cols() != 1 {
		return 0, ErrNotScalar
	}

	return r.Matrix.At(0, 0)
}

func (r Result) String() string { return r.Matrix.String() }

// Report collects the results of a Run under a unique run id.
type Report struct {
	ID      string
	Results []Result
}

// session is the mutable state of a single Run.
type session struct {
	env map[string]*matrix.Dense
	rng *rand.Rand
}

// Run executes doc step by step. It stops at the first failing step or when
// ctx is done, returning the results gathered so far together with the error.
func (r *Runner) Run(ctx context.Context, doc *Document) (*Report, error) {
	rep := &Report{ID: uuid.New().String()}
	if doc == nil {
		return rep, nil
	}

	env, err := doc.Env()
	if err != nil {
		log.Errorf("[%s] loading matrices failed: %v", rep.ID, err)
		return rep, err
	}
	seed := r.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &session{env: env, rng: rand.New(rand.NewSource(seed))}

	log.Debugf("[%s] running %d steps over %d matrices", rep.ID, len(doc.Steps), len(env))
	for i, step := range doc.Steps {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		log.Debugf("[%s] step %d: %s %v", rep.ID, i, step.Op, step.Args)

		res, err := r.exec(s, step)
		if err != nil {
			err = &StepError{Index: i, Op: step.Op, Err: err}
			log.Errorf("[%s] %v", rep.ID, err)
			return rep, err
		}
		res.Index = i
		rep.Results = append(rep.Results, res)
	}

	return rep, nil
}

func (r *Runner) exec(s *session, step Step) (Result, error) {
	entry, ok := ops[step.Op]
	if !ok {
		return Result{}, fmt.Errorf("%q: %w", step.Op, ErrUnknownOp)
	}
	if len(step.Args) != entry.arity {
		return Result{}, fmt.Errorf("got %d, want %d: %w", len(step.Args), entry.arity, ErrArity)
	}
	if step.Save == LastName {
		return Result{}, fmt.Errorf("save %q: %w", step.Save, ErrReservedName)
	}

	in := make([]*matrix.Dense, len(step.Args))
	for i, name := range step.Args {
		m, ok := s.env[name]
		if !ok {
			return Result{}, fmt.Errorf("%q: %w", name, ErrUnknownMatrix)
		}
		in[i] = m
	}

	out, err := entry.fn(r, s, step, in)
	if err != nil {
		return Result{}, err
	}

	res := Result{Op: step.Op, Matrix: out, Scalar: entry.scalar}
	s.env[LastName] = out
	if step.Save != "" {
		s.env[step.Save] = out
		res.Saved = step.Save
	}

	return res, nil
}

type opFunc func(r *Runner, s *session, step Step, in []*matrix.Dense) (*matrix.Dense, error)

type opEntry struct {
	arity  int
	scalar bool
	fn     opFunc
}

var ops = map[string]opEntry{
	"show":      {arity: 1, fn: func(_ *Runner, _ *session, _ Step, in []*matrix.Dense) (*matrix.Dense, error) { return in[0].Clone(), nil }},
	"add":       {arity: 2, fn: binary(matrix.Add)},
	"sub":       {arity: 2, fn: binary(matrix.Sub)},
	"mul":       {arity: 2, fn: binary(matrix.Mul)},
	"hadamard":  {arity: 2, fn: binary(matrix.Hadamard)},
	"addrow":    {arity: 2, fn: binary(matrix.AddRowBroadcast)},
	"transpose": {arity: 1, fn: unary(matrix.Transpose)},
	"softmax":   {arity: 1, fn: unary(activation.SoftmaxRows)},
	"relu":      {arity: 1, fn: apply(activation.ReLU)},
	"sigmoid":   {arity: 1, fn: apply(activation.Sigmoid)},
	"tanh":      {arity: 1, fn: apply(activation.Tanh)},
	"scale":     {arity: 1, fn: opScale},
	"det":       {arity: 1, scalar: true, fn: opDet},
	"inverse":   {arity: 1, fn: opInverse},
	"sum":       {arity: 1, fn: reduce(matrix.Sum)},
	"mean":      {arity: 1, fn: reduce(matrix.Mean)},
	"reshape":   {arity: 1, fn: opReshape},
	"identity":  {arity: 0, fn: opIdentity},
	"random":    {arity: 0, fn: opRandom},
}

// Ops returns the supported operation names (unordered).
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}

	return names
}

func binary(f func(a, b *matrix.Dense) (*matrix.Dense, error)) opFunc {
	return func(_ *Runner, _ *session, _ Step, in []*matrix.Dense) (*matrix.Dense, error) {
		return f(in[0], in[1])
	}
}

func unary(f func(m *matrix.Dense) (*matrix.Dense, error)) opFunc {
	return func(_ *Runner, _ *session, _ Step, in []*matrix.Dense) (*matrix.Dense, error) {
		return f(in[0])
	}
}

func apply(f func(float64) float64) opFunc {
	return func(_ *Runner, _ *session, _ Step, in []*matrix.Dense) (*matrix.Dense, error) {
		return matrix.Apply(in[0], f)
	}
}

func reduce(f func(m *matrix.Dense, axis matrix.Axis) (*matrix.Dense, error)) opFunc {
	return func(_ *Runner, _ *session, step Step, in []*matrix.Dense) (*matrix.Dense, error) {
		axis, err := matrix.ParseAxis(step.Axis)
		if err != nil {
			return nil, err
		}
		return f(in[0], axis)
	}
}

func opScale(_ *Runner, _ *session, step Step, in []*matrix.Dense) (*matrix.Dense, error) {
	if step.Scalar == nil {
		return nil, fmt.Errorf("scalar: %w", ErrMissingParam)
	}

	return matrix.Scale(in[0], *step.Scalar)
}

func opDet(r *Runner, _ *session, _ Step, in []*matrix.Dense) (*matrix.Dense, error) {
	if err := r.checkSize(in[0]); err != nil {
		return nil, err
	}
	det, err := matrix.DeterminantWith(in[0], r.solver)
	if err != nil {
		return nil, err
	}

	return matrix.NewFilled(1, 1, det)
}

func opInverse(r *Runner, _ *session, _ Step, in []*matrix.Dense) (*matrix.Dense, error) {
	if err := r.checkSize(in[0]); err != nil {
		return nil, err
	}

	return matrix.InverseWith(in[0], r.solver)
}

func opReshape(_ *Runner, _ *session, step Step, in []*matrix.Dense) (*matrix.Dense, error) {
	return matrix.Reshape(in[0], step.Rows, step.Cols)
}

func opIdentity(_ *Runner, _ *session, step Step, _ []*matrix.Dense) (*matrix.Dense, error) {
	return matrix.Identity(step.Rows)
}

func opRandom(_ *Runner, s *session, step Step, _ []*matrix.Dense) (*matrix.Dense, error) {
	return matrix.Random(step.Rows, step.Cols, step.Low, step.High, matrix.WithRand(s.rng))
}

// checkSize enforces the det/inverse guard on square inputs; non-square input
// is left to the solver, which reports matrix.ErrNotSquare.
func (r *Runner) checkSize(m *matrix.Dense) error {
	if r.maxDet > 0 && m.IsSquare() && m.Rows() > r.maxDet {
		return fmt.Errorf("%dx%d exceeds %d: %w", m.Rows(), m.Cols(), r.maxDet, ErrTooLarge)
	}

	return nil
}
