// Package advancing implements the advancing-front main loop: candidate
// third-vertex generation, validation against the quadtree neighborhood,
// front split/merge/shrink, triangle emission, and the five AccelUpdate
// index-reconciliation cases (§4.5, §4.3's AccelUpdate protocol table).
//
// GenerateGrid drives one region at a time; it terminates when every
// IndependentFrontList has been consumed. Ordering inside the loop follows
// §5's guarantee: FrontLineUpDate (front topology rewiring) runs before
// AccelUpdate (index edits) for every emitted triangle, because AccelUpdate
// reads the just-rewired pred/succ pointers.
package advancing
