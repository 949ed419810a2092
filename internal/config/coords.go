package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Point is a world position in pixels, centre of the entity.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// UnmarshalYAML accepts "x,y", [x, y] or {x: .., y: ..}.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		pt, err := parsePoint(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*p = pt
		return nil
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return fmt.Errorf("line %d: point: %w", node.Line, err)
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point needs 2 values, got %d", node.Line, len(xy))
		}
		*p = Point{X: xy[0], Y: xy[1]}
		return nil
	case yaml.MappingNode:
		type plain Point
		var pt plain
		if err := node.Decode(&pt); err != nil {
			return fmt.Errorf("line %d: point: %w", node.Line, err)
		}
		*p = Point(pt)
		return nil
	default:
		return fmt.Errorf("line %d: unsupported point form", node.Line)
	}
}

// Points is a list of positions. The legacy form is "x,y;x,y;...".
type Points []Point

// UnmarshalYAML accepts a delimited string or a sequence of points.
func (ps *Points) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		out, err := parsePoints(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*ps = out
		return nil
	case yaml.SequenceNode:
		out := make(Points, 0, len(node.Content))
		for _, item := range node.Content {
			var p Point
			if err := p.UnmarshalYAML(item); err != nil {
				return err
			}
			out = append(out, p)
		}
		*ps = out
		return nil
	default:
		return fmt.Errorf("line %d: unsupported point list form", node.Line)
	}
}

// Size is a sprite's width and height in pixels.
type Size struct {
	W float64 `yaml:"width"`
	H float64 `yaml:"height"`
}

// UnmarshalYAML accepts "w,h", [w, h] or {width: .., height: ..}.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		type plain Size
		var sz plain
		if err := node.Decode(&sz); err != nil {
			return fmt.Errorf("line %d: size: %w", node.Line, err)
		}
		*s = Size(sz)
		return nil
	}
	var p Point
	if err := p.UnmarshalYAML(node); err != nil {
		return err
	}
	*s = Size{W: p.X, H: p.Y}
	return nil
}

// MonkeySpawn is the start state of a patrolling monkey.
// The legacy form is "x,y;right;100,50".
type MonkeySpawn struct {
	Pos         Point
	FacingRight bool
	Route       []int
}

type monkeySpawnYAML struct {
	Pos    Point  `yaml:"pos"`
	Facing string `yaml:"facing"`
	Route  []int  `yaml:"route"`
}

// UnmarshalYAML accepts the legacy string or {pos, facing, route}.
func (m *MonkeySpawn) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		spawn, err := parseMonkeySpawn(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*m = spawn
		return nil
	case yaml.MappingNode:
		var raw monkeySpawnYAML
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("line %d: monkey: %w", node.Line, err)
		}
		right, err := parseFacing(raw.Facing)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*m = MonkeySpawn{Pos: raw.Pos, FacingRight: right, Route: raw.Route}
		return nil
	default:
		return fmt.Errorf("line %d: unsupported monkey form", node.Line)
	}
}

func parsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid point %q: want \"x,y\"", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

func parsePoints(s string) (Points, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	entries := strings.Split(s, ";")
	out := make(Points, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		p, err := parsePoint(e)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parseMonkeySpawn(s string) (MonkeySpawn, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 3 {
		return MonkeySpawn{}, fmt.Errorf("invalid monkey %q: want \"x,y;facing;d1,d2,...\"", s)
	}
	pos, err := parsePoint(parts[0])
	if err != nil {
		return MonkeySpawn{}, err
	}
	right, err := parseFacing(parts[1])
	if err != nil {
		return MonkeySpawn{}, err
	}
	var route []int
	for _, d := range strings.Split(parts[2], ",") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		n, err := strconv.Atoi(d)
		if err != nil {
			return MonkeySpawn{}, fmt.Errorf("invalid route distance %q: %w", d, err)
		}
		route = append(route, n)
	}
	return MonkeySpawn{Pos: pos, FacingRight: right, Route: route}, nil
}

func parseFacing(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return true, nil
	case "left":
		return false, nil
	default:
		return false, fmt.Errorf("invalid facing %q: want left or right", s)
	}
}
