// Package carrier contains the Carrier aggregate: one record per delivery
// agent, keyed by the agent's authority. Reputation gates delivery
// acceptance and grows only as a side effect of completed deliveries.
package carrier
