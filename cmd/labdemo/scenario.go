package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lab"
	"github.com/npillmayer/lab/alloc"
	"gopkg.in/yaml.v3"
)

// Scenario is a sequence of steps performed on a container of ints.
//
//	container: list
//	steps:
//	  - op: generate
//	    count: 10
//	  - op: erase
//	    values: [2, 4, 6]
//	  - op: insert
//	    where: middle
//	    value: 20
//	  - op: print
type Scenario struct {
	Container string `yaml:"container"`
	Steps     []Step `yaml:"steps"`
}

// Step is a single operation of a scenario. Which fields are used depends on Op.
type Step struct {
	Op     string `yaml:"op"`               // generate | erase | insert | print | size
	Count  int    `yaml:"count,omitempty"`  // generate
	Values []int  `yaml:"values,omitempty"` // erase
	Where  string `yaml:"where,omitempty"`  // insert: front | middle | end
	Value  int    `yaml:"value,omitempty"`  // insert
}

// defaultScenario returns the built-in scenario for a container kind.
func defaultScenario(container string) *Scenario {
	return &Scenario{
		Container: container,
		Steps: []Step{
			{Op: "generate", Count: 10},
			{Op: "print"},
			{Op: "size"},
			{Op: "erase", Values: []int{2, 4, 6}},
			{Op: "print"},
			{Op: "insert", Where: "front", Value: 10},
			{Op: "print"},
			{Op: "insert", Where: "middle", Value: 20},
			{Op: "print"},
			{Op: "insert", Where: "end", Value: 30},
			{Op: "print"},
		},
	}
}

// loadScenario reads a scenario from a YAML file.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario %s", path)
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "parsing scenario")
	}
	if s.Container == "" {
		s.Container = "list"
	}
	for i, step := range s.Steps {
		switch step.Op {
		case "generate", "erase", "print", "size":
		case "insert":
			if step.Where != "front" && step.Where != "middle" && step.Where != "end" {
				return nil, errors.Newf("step %d: insert position must be front, middle or end, is %q", i+1, step.Where)
			}
		default:
			return nil, errors.Newf("step %d: unknown operation %q", i+1, step.Op)
		}
	}
	return s, nil
}

// runner executes scenarios. Regular output goes to out, reports of missing
// values to errOut.
type runner struct {
	out    io.Writer
	errOut io.Writer
	layout bool // print the container's layout after the run
}

// Run executes s on a fresh container. All storage is drawn from a counting
// resource; nodes or blocks still outstanding after the container has been
// destroyed are reported as an error.
func (r *runner) Run(s *Scenario) error {
	res := alloc.NewCounting(alloc.WithName(s.Container))
	d, err := newDriver(s.Container, res)
	if err != nil {
		return err
	}
	for i, step := range s.Steps {
		if err = r.step(d, step); err != nil {
			d.Destroy()
			return errors.Wrapf(err, "step %d (%s)", i+1, step.Op)
		}
	}
	if r.layout {
		fmt.Fprintln(r.out, d.Layout())
	}
	tracer().Infof("%s before destruction: %v", d.Name(), res)
	d.Destroy()
	if res.Live() != 0 {
		return errors.AssertionFailedf("%s leaked %d objects", d.Name(), res.Live())
	}
	return nil
}

func (r *runner) step(d driver, step Step) error {
	switch step.Op {
	case "generate":
		return d.Generate(step.Count)
	case "erase":
		for _, value := range step.Values {
			if !d.Erase(value) {
				fmt.Fprintf(r.errOut, "Missing value %d in %s instance\n", value, d.Name())
			}
		}
	case "insert":
		return d.Insert(step.Where, step.Value)
	case "print":
		if d.Size() == 0 {
			fmt.Fprintln(r.out, "<Range is empty>")
		} else {
			fmt.Fprintln(r.out, lab.Join(d.Values(), ","))
		}
	case "size":
		fmt.Fprintln(r.out, d.Size())
	default:
		return errors.Newf("unknown operation %q", step.Op)
	}
	return nil
}
