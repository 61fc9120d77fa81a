// internal/synthesis/anchor.go
package synthesis

// AnchorID is the sentinel identifier for the external anchor. It is never
// a member of any source submission set; downstream accuracy logic detects
// anchor comparisons purely by that absence.
const AnchorID = "external_anchor_exemplar"

// anchorConfidence is the fixed confidence on anchor comparisons. It is a
// constant, not a draw: anchor outcomes are always known, so anchor rows
// must be fully deterministic and consume no randomness.
const anchorConfidence = 0.85

// anchorJustification is the fixed free-text rationale on anchor comparisons.
const anchorJustification = "Submission exceeds the anchor quality in argumentation."
