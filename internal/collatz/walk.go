package collatz

import (
	"math"

	"github.com/iburimskiy/collatz-visualization/internal/config"
)

// Vec is a point in the centered, y-up scene coordinate system.
type Vec struct {
	X, Y float64
}

// Segment is one drawn step of a trajectory.
type Segment struct {
	Start, End Vec
	Color      config.HSV
	Width      float64
	Odd        bool
}

// Trajectory is the polyline of one starting value.
type Trajectory struct {
	Seed     int64
	Segments []Segment
}

// Steps is the number of Collatz iterations the walk took.
func (t Trajectory) Steps() int64 { return int64(len(t.Segments)) }

const initialHeading = math.Pi / 2

// Walk follows n down to 1, turning right on even steps and left on odd
// ones. On overflow the segments drawn so far are returned with the error.
func Walk(n int64, origin Vec, s config.Snapshot) (Trajectory, error) {
	tr := Trajectory{Seed: n}
	turn := s.RotationDegrees * math.Pi / 180
	heading := initialHeading
	pos := origin

	for n > 1 {
		next, odd, err := Step(n)
		if err != nil {
			return tr, err
		}
		n = next
		if odd {
			heading += turn
		} else {
			heading -= turn
		}

		end := Vec{
			X: pos.X + s.SegmentLength*math.Cos(heading),
			Y: pos.Y + s.SegmentLength*math.Sin(heading),
		}
		tr.Segments = append(tr.Segments, Segment{
			Start: pos,
			End:   end,
			Color: s.Color,
			Width: s.StrokeWidth,
			Odd:   odd,
		})
		pos = end
	}
	return tr, nil
}
