package attractor

// portrait traces a weathered face in normalized image coordinates, where
// (0,0) is the top-left corner.
var portrait = []Point{
	// head, left side
	{X: 0.28, Y: 0.12, Brightness: 1},
	{X: 0.24, Y: 0.16, Brightness: 1},
	{X: 0.21, Y: 0.20, Brightness: 1},
	{X: 0.19, Y: 0.25, Brightness: 1},
	{X: 0.17, Y: 0.30, Brightness: 1},
	{X: 0.16, Y: 0.35, Brightness: 1},
	{X: 0.16, Y: 0.40, Brightness: 1},
	{X: 0.16, Y: 0.45, Brightness: 1},
	{X: 0.17, Y: 0.50, Brightness: 1},
	{X: 0.18, Y: 0.55, Brightness: 1},
	{X: 0.20, Y: 0.60, Brightness: 1},
	{X: 0.22, Y: 0.65, Brightness: 1},
	{X: 0.24, Y: 0.70, Brightness: 1},
	{X: 0.27, Y: 0.75, Brightness: 1},
	// jaw line
	{X: 0.30, Y: 0.79, Brightness: 1},
	{X: 0.34, Y: 0.82, Brightness: 1},
	{X: 0.38, Y: 0.85, Brightness: 1},
	{X: 0.43, Y: 0.87, Brightness: 1},
	{X: 0.48, Y: 0.88, Brightness: 1},
	{X: 0.53, Y: 0.88, Brightness: 1},
	{X: 0.58, Y: 0.86, Brightness: 1},
	{X: 0.63, Y: 0.84, Brightness: 1},
	{X: 0.67, Y: 0.81, Brightness: 1},
	{X: 0.71, Y: 0.77, Brightness: 1},
	// head, right side
	{X: 0.74, Y: 0.72, Brightness: 1},
	{X: 0.76, Y: 0.67, Brightness: 1},
	{X: 0.78, Y: 0.62, Brightness: 1},
	{X: 0.79, Y: 0.57, Brightness: 1},
	{X: 0.80, Y: 0.52, Brightness: 1},
	{X: 0.80, Y: 0.47, Brightness: 1},
	{X: 0.80, Y: 0.42, Brightness: 1},
	{X: 0.79, Y: 0.37, Brightness: 1},
	{X: 0.78, Y: 0.32, Brightness: 1},
	{X: 0.76, Y: 0.27, Brightness: 1},
	{X: 0.73, Y: 0.22, Brightness: 1},
	{X: 0.70, Y: 0.17, Brightness: 1},
	{X: 0.66, Y: 0.13, Brightness: 1},
	// top of head
	{X: 0.62, Y: 0.10, Brightness: 1},
	{X: 0.58, Y: 0.07, Brightness: 1},
	{X: 0.54, Y: 0.05, Brightness: 1},
	{X: 0.50, Y: 0.04, Brightness: 1},
	{X: 0.46, Y: 0.05, Brightness: 1},
	{X: 0.42, Y: 0.07, Brightness: 1},
	{X: 0.38, Y: 0.09, Brightness: 1},
	{X: 0.33, Y: 0.11, Brightness: 1},
	// left eye
	{X: 0.28, Y: 0.38, Brightness: 1},
	{X: 0.30, Y: 0.36, Brightness: 1},
	{X: 0.33, Y: 0.35, Brightness: 1},
	{X: 0.36, Y: 0.35, Brightness: 1},
	{X: 0.39, Y: 0.36, Brightness: 1},
	{X: 0.41, Y: 0.38, Brightness: 1},
	{X: 0.39, Y: 0.40, Brightness: 1},
	{X: 0.36, Y: 0.41, Brightness: 1},
	{X: 0.33, Y: 0.41, Brightness: 1},
	{X: 0.30, Y: 0.40, Brightness: 1},
	{X: 0.34, Y: 0.38, Brightness: 1},
	// right eye
	{X: 0.54, Y: 0.36, Brightness: 1},
	{X: 0.57, Y: 0.34, Brightness: 1},
	{X: 0.60, Y: 0.33, Brightness: 1},
	{X: 0.63, Y: 0.34, Brightness: 1},
	{X: 0.66, Y: 0.35, Brightness: 1},
	{X: 0.68, Y: 0.37, Brightness: 1},
	{X: 0.66, Y: 0.39, Brightness: 1},
	{X: 0.63, Y: 0.40, Brightness: 1},
	{X: 0.60, Y: 0.40, Brightness: 1},
	{X: 0.57, Y: 0.39, Brightness: 1},
	{X: 0.61, Y: 0.37, Brightness: 1},
	// left eyebrow
	{X: 0.26, Y: 0.32, Brightness: 1},
	{X: 0.29, Y: 0.30, Brightness: 1},
	{X: 0.32, Y: 0.29, Brightness: 1},
	{X: 0.35, Y: 0.28, Brightness: 1},
	{X: 0.38, Y: 0.29, Brightness: 1},
	{X: 0.41, Y: 0.30, Brightness: 1},
	{X: 0.43, Y: 0.32, Brightness: 1},
	// right eyebrow
	{X: 0.52, Y: 0.30, Brightness: 1},
	{X: 0.55, Y: 0.28, Brightness: 1},
	{X: 0.58, Y: 0.27, Brightness: 1},
	{X: 0.61, Y: 0.27, Brightness: 1},
	{X: 0.64, Y: 0.28, Brightness: 1},
	{X: 0.67, Y: 0.29, Brightness: 1},
	{X: 0.70, Y: 0.31, Brightness: 1},
	// forehead wrinkles
	{X: 0.35, Y: 0.22, Brightness: 1},
	{X: 0.42, Y: 0.21, Brightness: 1},
	{X: 0.50, Y: 0.20, Brightness: 1},
	{X: 0.58, Y: 0.21, Brightness: 1},
	{X: 0.65, Y: 0.23, Brightness: 1},
	{X: 0.38, Y: 0.25, Brightness: 1},
	{X: 0.50, Y: 0.24, Brightness: 1},
	{X: 0.62, Y: 0.25, Brightness: 1},
	// nose
	{X: 0.48, Y: 0.40, Brightness: 1},
	{X: 0.47, Y: 0.44, Brightness: 1},
	{X: 0.46, Y: 0.48, Brightness: 1},
	{X: 0.46, Y: 0.52, Brightness: 1},
	{X: 0.45, Y: 0.56, Brightness: 1},
	{X: 0.44, Y: 0.59, Brightness: 1},
	{X: 0.42, Y: 0.61, Brightness: 1},
	{X: 0.46, Y: 0.63, Brightness: 1},
	{X: 0.50, Y: 0.64, Brightness: 1},
	{X: 0.54, Y: 0.63, Brightness: 1},
	{X: 0.56, Y: 0.60, Brightness: 1},
	{X: 0.52, Y: 0.56, Brightness: 1},
	{X: 0.53, Y: 0.52, Brightness: 1},
	{X: 0.52, Y: 0.48, Brightness: 1},
	// nasolabial folds
	{X: 0.40, Y: 0.58, Brightness: 1},
	{X: 0.38, Y: 0.62, Brightness: 1},
	{X: 0.36, Y: 0.66, Brightness: 1},
	{X: 0.58, Y: 0.58, Brightness: 1},
	{X: 0.60, Y: 0.62, Brightness: 1},
	{X: 0.62, Y: 0.66, Brightness: 1},
	// mouth
	{X: 0.38, Y: 0.70, Brightness: 1},
	{X: 0.42, Y: 0.71, Brightness: 1},
	{X: 0.46, Y: 0.72, Brightness: 1},
	{X: 0.50, Y: 0.72, Brightness: 1},
	{X: 0.54, Y: 0.72, Brightness: 1},
	{X: 0.58, Y: 0.71, Brightness: 1},
	{X: 0.62, Y: 0.69, Brightness: 1},
	{X: 0.42, Y: 0.74, Brightness: 1},
	{X: 0.46, Y: 0.75, Brightness: 1},
	{X: 0.50, Y: 0.76, Brightness: 1},
	{X: 0.54, Y: 0.75, Brightness: 1},
	{X: 0.58, Y: 0.74, Brightness: 1},
	{X: 0.36, Y: 0.69, Brightness: 1},
	{X: 0.64, Y: 0.68, Brightness: 1},
	// chin
	{X: 0.45, Y: 0.80, Brightness: 1},
	{X: 0.50, Y: 0.82, Brightness: 1},
	{X: 0.55, Y: 0.80, Brightness: 1},
	{X: 0.48, Y: 0.78, Brightness: 1},
	{X: 0.52, Y: 0.78, Brightness: 1},
	// left ear
	{X: 0.14, Y: 0.36, Brightness: 1},
	{X: 0.12, Y: 0.40, Brightness: 1},
	{X: 0.11, Y: 0.44, Brightness: 1},
	{X: 0.12, Y: 0.48, Brightness: 1},
	{X: 0.14, Y: 0.52, Brightness: 1},
	{X: 0.16, Y: 0.54, Brightness: 1},
	// right ear
	{X: 0.82, Y: 0.40, Brightness: 1},
	{X: 0.83, Y: 0.44, Brightness: 1},
	{X: 0.82, Y: 0.48, Brightness: 1},
	// neck/collar
	{X: 0.30, Y: 0.85, Brightness: 1},
	{X: 0.35, Y: 0.90, Brightness: 1},
	{X: 0.40, Y: 0.93, Brightness: 1},
	{X: 0.50, Y: 0.95, Brightness: 1},
	{X: 0.60, Y: 0.93, Brightness: 1},
	{X: 0.65, Y: 0.90, Brightness: 1},
	{X: 0.70, Y: 0.85, Brightness: 1},
	// cheekbones
	{X: 0.24, Y: 0.50, Brightness: 1},
	{X: 0.26, Y: 0.55, Brightness: 1},
	{X: 0.74, Y: 0.50, Brightness: 1},
	{X: 0.72, Y: 0.55, Brightness: 1},
	// under-eye creases
	{X: 0.30, Y: 0.43, Brightness: 1},
	{X: 0.34, Y: 0.44, Brightness: 1},
	{X: 0.38, Y: 0.44, Brightness: 1},
	{X: 0.58, Y: 0.43, Brightness: 1},
	{X: 0.62, Y: 0.43, Brightness: 1},
	{X: 0.66, Y: 0.42, Brightness: 1},
}

// Portrait returns a copy of the built-in silhouette.
func Portrait() []Point {
	out := make([]Point, len(portrait))
	copy(out, portrait)
	return out
}
