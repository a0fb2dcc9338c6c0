package image

// Copy copies the pixels of src into dst row by row, honoring both strides.
// Both images must be software images of the same format and size.
func Copy(dst, src *ImageBuf) error {
	if dst.Kind() != KindSoftware || src.Kind() != KindSoftware {
		return ErrHardwareImage
	}
	if dst.format != src.format {
		return ErrFormatMismatch
	}
	if dst.width != src.width || dst.height != src.height {
		return ErrSizeMismatch
	}

	f := src.format
	for p := 0; p < f.NumPlanes(); p++ {
		rowBytes := f.PlaneRowBytes(p, src.width)
		rows := f.PlaneHeight(p, src.height)
		ds, ss := dst.strides[p], src.strides[p]
		dp, sp := dst.planes[p], src.planes[p]

		if ds == rowBytes && ss == rowBytes {
			n := rowBytes * rows
			copy(dp[:n], sp[:n])
			continue
		}
		for y := 0; y < rows; y++ {
			copy(dp[y*ds:y*ds+rowBytes], sp[y*ss:y*ss+rowBytes])
		}
	}
	return nil
}
