package utils

// ScaleDimensions computes output (w, h) preserving aspect ratio.
// Pass 0 for either axis to calculate it from the other.
func ScaleDimensions(srcW, srcH, targetW, targetH int) (int, int) {
	if targetW == 0 && targetH == 0 {
		return srcW, srcH
	}
	if targetW == 0 {
		ratio := float64(targetH) / float64(srcH)
		return int(float64(srcW) * ratio), targetH
	}
	if targetH == 0 {
		ratio := float64(targetW) / float64(srcW)
		return targetW, int(float64(srcH) * ratio)
	}
	return targetW, targetH
}

// ClampUint8 narrows v to the uint8 range, saturating at the bounds.
// The usual write-back conversion after accumulating a convolution in a
// wider integer type.
func ClampUint8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ClampUint16 narrows v to the uint16 range, saturating at the bounds.
func ClampUint16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

// ClampUnit clamps v to [0, 1]; useful before scaling float pixels back to
// an integer range.
func ClampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
