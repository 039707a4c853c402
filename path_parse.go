package nyx

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPath is returned by ParsePath for malformed path data.
var ErrInvalidPath = errors.New("nyx: invalid path data")

// ParsePath parses SVG path data. The commands M, L, H, V, Q, C and Z are
// supported in absolute and relative form, including implicit repeats.
func ParsePath(d string) (*Path, error) {
	s := pathScanner{src: d}
	p := NewPath()

	var cmd byte
	for {
		s.skipSeparators()
		if s.done() {
			break
		}

		if c := s.peek(); isCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return nil, s.errorf("expected command")
		}

		rel := cmd >= 'a'
		cur := p.current
		if !rel {
			cur = Point{}
		}

		switch cmd {
		case 'M', 'm':
			pt, err := s.point()
			if err != nil {
				return nil, err
			}
			pt = pt.Add(cur)
			p.MoveTo(pt.X, pt.Y)
			// Further coordinate pairs are implicit LineTo commands.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			pt, err := s.point()
			if err != nil {
				return nil, err
			}
			pt = pt.Add(cur)
			p.LineTo(pt.X, pt.Y)
		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += p.current.X
			}
			p.LineTo(x, p.current.Y)
		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += p.current.Y
			}
			p.LineTo(p.current.X, y)
		case 'Q', 'q':
			pts, err := s.points(2)
			if err != nil {
				return nil, err
			}
			c, pt := pts[0].Add(cur), pts[1].Add(cur)
			p.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case 'C', 'c':
			pts, err := s.points(3)
			if err != nil {
				return nil, err
			}
			c1, c2, pt := pts[0].Add(cur), pts[1].Add(cur), pts[2].Add(cur)
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case 'Z', 'z':
			p.Close()
			cmd = 0
		default:
			return nil, s.errorf("unsupported command %q", cmd)
		}
	}

	if len(p.elements) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if _, ok := p.elements[0].(MoveTo); !ok {
		return nil, fmt.Errorf("%w: must start with M", ErrInvalidPath)
	}
	return p, nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'Q', 'q', 'C', 'c', 'Z', 'z':
		return true
	}
	return false
}

type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) done() bool { return s.pos >= len(s.src) }

func (s *pathScanner) peek() byte { return s.src[s.pos] }

func (s *pathScanner) skipSeparators() {
	for !s.done() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrInvalidPath, s.pos, fmt.Sprintf(format, args...))
}

// number scans one number token. A sign or a second decimal point starts
// a new token, as in "10-5" or "0.5.5".
func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if !s.done() && (s.peek() == '+' || s.peek() == '-') {
		s.pos++
	}
	digits, dot := false, false
scan:
	for !s.done() {
		c := s.peek()
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' && !dot:
			dot = true
		default:
			break scan
		}
		s.pos++
	}
	if digits && !s.done() && (s.peek() == 'e' || s.peek() == 'E') {
		save := s.pos
		s.pos++
		if !s.done() && (s.peek() == '+' || s.peek() == '-') {
			s.pos++
		}
		expDigits := false
		for !s.done() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
			expDigits = true
		}
		if !expDigits {
			s.pos = save
		}
	}
	if !digits {
		s.pos = start
		return 0, s.errorf("expected number")
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if !isFinite(v) {
		return 0, s.errorf("non-finite number")
	}
	return v, nil
}

func (s *pathScanner) point() (Point, error) {
	x, err := s.number()
	if err != nil {
		return Point{}, err
	}
	y, err := s.number()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func (s *pathScanner) points(n int) ([]Point, error) {
	pts := make([]Point, n)
	for i := range pts {
		pt, err := s.point()
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}
