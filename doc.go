// Package gm3 provides 3d geometry primitives.
//
// It includes generic vector types Vec2 and Vec3, a column major 3x3 matrix
// type Mat3 with a full singular value decomposition, a packed symmetric
// matrix type SymMat3 with a Jacobi eigendecomposition, quaternions, axis
// aligned bounding boxes and line segment queries.
//
// All types are plain fixed size arrays of a Scalar type. Every operation is
// a pure function of its inputs; operations that can degenerate report this
// with an ok flag instead of producing NaN values.
package gm3
