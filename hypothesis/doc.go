// Package hypothesis tests an observed category sample against a null model
// by simulation: it repeatedly draws samples from the model's proportions,
// measures how far each simulated sample lands from the model (total
// variation distance), and reports where an observed distance falls in that
// simulated null distribution.
package hypothesis
