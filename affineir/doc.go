// Package affineir holds the affine intermediate representation a
// validated loop nest is lowered to: linear forms over loop indices,
// array subscripts built from them, assignment statements, loop
// headers, the perfect loop nest they compose into, and the distance/
// direction vector helpers shared by the dependence analyzer and the
// transformation planner.
//
// Every variable that appears in a LinearForm is identified by the
// astiface.NodeHandle of its declaration rather than a borrowed AST
// pointer, so values in this package outlive any particular parse of
// the frontend's AST.
package affineir
