package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// The orientation correction pipeline is written out explicitly because its
// numeric behavior is part of the controller's contract: build a look-at
// rotation, convert to a quaternion, constrain it to yaw, then rotate toward
// it by a bounded angular step.

// lerpVec moves a toward b by factor t. Deliberately unclamped: a factor
// above 1 overshoots, matching the follower's delta-scaled smoothing rates.
func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// lookAtQuat builds the rotation that orients -Z from eye toward target
// with the given up vector, as a quaternion.
func lookAtQuat(eye, target, up mgl64.Vec3) mgl64.Quat {
	z := eye.Sub(target)
	if z.LenSqr() == 0 {
		// eye and target coincide; look along +Z
		z[2] = 1
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.LenSqr() == 0 {
		// up is parallel to the view axis; nudge off the pole
		if math.Abs(up.Z()) == 1 {
			z[0] += 1e-4
		} else {
			z[2] += 1e-4
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return quatFromBasis(x, y, z)
}

// quatFromBasis converts the rotation matrix with columns x, y, z to a
// quaternion using the trace method.
func quatFromBasis(x, y, z mgl64.Vec3) mgl64.Quat {
	m00, m01, m02 := x[0], y[0], z[0]
	m10, m11, m12 := x[1], y[1], z[1]
	m20, m21, m22 := x[2], y[2], z[2]

	trace := m00 + m11 + m22
	var q mgl64.Quat
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q.W = 0.25 / s
		q.V = mgl64.Vec3{(m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1 + m00 - m11 - m22)
		q.W = (m21 - m12) / s
		q.V = mgl64.Vec3{0.25 * s, (m01 + m10) / s, (m02 + m20) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1 + m11 - m00 - m22)
		q.W = (m02 - m20) / s
		q.V = mgl64.Vec3{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s}
	default:
		s := 2 * math.Sqrt(1 + m22 - m00 - m11)
		q.W = (m10 - m01) / s
		q.V = mgl64.Vec3{(m02 + m20) / s, (m12 + m21) / s, 0.25 * s}
	}
	return q
}

// yawConstrain zeroes the quaternion's X and Z components and renormalizes,
// leaving rotation about the vertical axis only.
func yawConstrain(q mgl64.Quat) mgl64.Quat {
	w, y := q.W, q.V[1]
	norm := math.Sqrt(w*w + y*y)
	if norm == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.Quat{W: w / norm, V: mgl64.Vec3{0, y / norm, 0}}
}

// angleBetween returns the rotation angle from a to b in radians.
func angleBetween(a, b mgl64.Quat) float64 {
	dot := a.Dot(b)
	if dot < 0 {
		dot = -dot
	}
	if dot > 1 {
		dot = 1
	}
	return 2 * math.Acos(dot)
}

// rotateTowards turns from toward to by at most step radians, spherically
// interpolating along the shortest arc.
func rotateTowards(from, to mgl64.Quat, step float64) mgl64.Quat {
	angle := angleBetween(from, to)
	if angle == 0 {
		return to
	}
	t := step / angle
	if t >= 1 {
		return to
	}

	dot := from.Dot(to)
	if dot < 0 {
		to = mgl64.Quat{W: -to.W, V: to.V.Mul(-1)}
		dot = -dot
	}
	if dot > 0.9995 {
		// arcs this small interpolate linearly without visible error
		return from.Add(to.Sub(from).Scale(t)).Normalize()
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	fa := math.Sin((1-t)*theta) / sinTheta
	fb := math.Sin(t*theta) / sinTheta
	return from.Scale(fa).Add(to.Scale(fb))
}

func quatEq(a, b mgl64.Quat) bool {
	return a.W == b.W && a.V == b.V
}
