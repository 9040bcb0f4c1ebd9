package script

import (
	"strings"
	"testing"

	"github.com/gogpu/rt"
)

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "keyword",
			input:  `(projectile :speed 11.25)`,
			expect: `(projectile "__kw_speed" 11.25)`,
		},
		{
			name:   "multiple keywords",
			input:  `(label "hi" :x 8 :y 12)`,
			expect: `(label "hi" "__kw_x" 8 "__kw_y" 12)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `(label "ratio :speed")`,
			expect: `(label "ratio :speed")`,
		},
		{
			name:   "escaped quote in string",
			input:  `(label "say \"hi\" :x") :x 1`,
			expect: `(label "say \"hi\" :x") "__kw_x" 1`,
		},
		{
			name:   "comment",
			input:  "; chapter 2 :x\n(canvas 1 1)",
			expect: "// chapter 2 :x\n(canvas 1 1)",
		},
		{
			name:   "double semicolon comment",
			input:  ";; header",
			expect: "// header",
		},
		{
			name:   "negative numbers untouched",
			input:  `(vector 0 -0.1 0)`,
			expect: `(vector 0 -0.1 0)`,
		},
		{
			name:   "assignment untouched",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "unterminated string",
			input:  `(label "abc`,
			expect: `(label "abc`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.input); got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestEvaluate_Builtins(t *testing.T) {
	source := `
; chapter 2, shrunk
(canvas 300 200 :background (color 0.1 0.1 0.1))
(projectile :position (point 0 2 0) :velocity (vector 1 1 0) :speed 5)
(environment :gravity (vector 0 -0.2 0) :wind (vector 0 0 0))
(ink (color 0 1 0))
(label "arc" :x 4 :y 14 :color (color 1 1 0))
(label "plain")
`
	s, err := Evaluate(source)
	if err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}

	if s.Width != 300 || s.Height != 200 {
		t.Errorf("size = %dx%d, want 300x200", s.Width, s.Height)
	}
	if want := rt.NewColor(0.1, 0.1, 0.1); !s.Background.Equal(want) {
		t.Errorf("background = %v, want %v", s.Background, want)
	}
	if !s.Position.Equal(rt.Point(0, 2, 0)) {
		t.Errorf("position = %v", s.Position)
	}
	if !s.Velocity.Magnitude().Equal(5) || !s.Velocity.X.Equal(s.Velocity.Y) {
		t.Errorf("velocity = %v, want speed 5 along (1, 1, 0)", s.Velocity)
	}
	if !s.Gravity.Equal(rt.Vector(0, -0.2, 0)) || !s.Wind.Equal(rt.Zero()) {
		t.Errorf("environment = %v, %v", s.Gravity, s.Wind)
	}
	if !s.Ink.Equal(rt.Green) {
		t.Errorf("ink = %v, want green", s.Ink)
	}

	if len(s.Labels) != 2 {
		t.Fatalf("labels = %v, want 2", s.Labels)
	}
	if l := s.Labels[0]; l.Text != "arc" || l.X != 4 || l.Y != 14 || !l.Color.Equal(rt.NewColor(1, 1, 0)) {
		t.Errorf("label 0 = %+v", l)
	}
	if l := s.Labels[1]; l.Text != "plain" || !l.Color.Equal(rt.White) {
		t.Errorf("label 1 = %+v", l)
	}
}

func TestEvaluate_PointVector(t *testing.T) {
	s, err := Evaluate(`(projectile :position (point 1.5 -2 3) :velocity (vector -0.25 4 0.5))`)
	if err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}
	if want := rt.Point(1.5, -2, 3); !s.Position.Equal(want) || !s.Position.IsPoint() {
		t.Errorf("position = %v, want %v", s.Position, want)
	}
	if want := rt.Vector(-0.25, 4, 0.5); !s.Velocity.Equal(want) || !s.Velocity.IsVector() {
		t.Errorf("velocity = %v, want %v", s.Velocity, want)
	}
}

func TestEvaluate_VelocityWithoutSpeed(t *testing.T) {
	s, err := Evaluate(`(projectile :velocity (vector 2 3 0))`)
	if err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}
	if !s.Velocity.Equal(rt.Vector(2, 3, 0)) {
		t.Errorf("velocity = %v, want unscaled (2, 3, 0)", s.Velocity)
	}
}

func TestEvaluate_Variables(t *testing.T) {
	source := `
(def up (vector 0 1 0))
(def fast 20)
(projectile :velocity up :speed fast)
`
	s, err := Evaluate(source)
	if err != nil {
		t.Fatalf("Evaluate() = %v", err)
	}
	if !s.Velocity.Equal(rt.Vector(0, 20, 0)) {
		t.Errorf("velocity = %v, want Vector(0, 20, 0)", s.Velocity)
	}
}

func TestEvaluate_BuiltinErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"point arity", `(point 1 2)`, "point: expected 3 arguments"},
		{"point type", `(point 1 "a" 2)`, "expected number"},
		{"canvas too small", `(canvas 0 10)`, "canvas: size"},
		{"canvas too large", `(canvas 100000 10)`, "canvas: size"},
		{"canvas fractional", `(canvas 10.5 10)`, "expected integer"},
		{"position must be point", `(projectile :position (vector 0 1 0))`, "expected point"},
		{"velocity must be vector", `(projectile :velocity (point 1 1 0))`, "expected vector"},
		{"zero speed direction", `(projectile :velocity (vector 0 0 0) :speed 3)`, "non-zero velocity"},
		{"unknown keyword", `(environment :drag (vector 0 0 0))`, "unknown keyword :drag"},
		{"dangling keyword", `(label "x" :x)`, "has no value"},
		{"ink type", `(ink (vector 1 0 0))`, "expected color"},
		{"label text", `(label 5)`, "expected string"},
		{"label x out of range", `(label "x" :x 40000)`, "label: position (40000, 10) outside"},
		{"label y out of range", `(label "x" :y -65536)`, "label: position (2, -65536) outside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.source)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want containing %q", err, tt.want)
			}
		})
	}
}
