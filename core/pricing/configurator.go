package pricing

// Configurator holds the six live selections of the pricing section.
// It belongs to a single page session and is driven by one goroutine;
// the derived price is recomputed on read and frozen only by Apply.
type Configurator struct {
	table *Table

	format    Format
	intensity Intensity
	frequency Frequency
	goal      Goal
	duration  Duration
	urgency   Urgency

	// Initializer values already consumed, so an unchanged initializer
	// is not re-applied on subsequent syncs.
	appliedInitialGoal      Goal
	appliedInitialIntensity Intensity
}

// NewConfigurator returns a configurator with the default selections.
func NewConfigurator(table *Table) *Configurator {
	if table == nil {
		table = DefaultTable()
	}
	return &Configurator{
		table:     table,
		format:    FormatIndividual,
		intensity: IntensityStandard,
		frequency: FrequencyTwice,
		goal:      GoalOGE,
		duration:  Duration60,
		urgency:   UrgencyLater,
	}
}

// Setters are last-write-wins; values outside the closed sets are ignored
// since the selectors only ever offer valid options.

// SetFormat selects the class size.
func (c *Configurator) SetFormat(f Format) {
	if f.Valid() {
		c.format = f
	}
}

// SetIntensity selects the load tier.
func (c *Configurator) SetIntensity(i Intensity) {
	if i.Valid() {
		c.intensity = i
	}
}

// SetFrequency selects the lessons-per-week cadence.
func (c *Configurator) SetFrequency(f Frequency) {
	if f.Valid() {
		c.frequency = f
	}
}

// SetGoal selects the preparation target.
func (c *Configurator) SetGoal(g Goal) {
	if g.Valid() {
		c.goal = g
	}
}

// SetDuration selects the lesson length.
func (c *Configurator) SetDuration(d Duration) {
	if d.Valid() {
		c.duration = d
	}
}

// SetUrgency selects the urgency flag.
func (c *Configurator) SetUrgency(u Urgency) {
	if u.Valid() {
		c.urgency = u
	}
}

// SetInitialGoal applies a goal arriving from a direction selection.
// Each distinct initializer value overwrites the field exactly once, so a
// later manual choice survives re-syncs of the same initializer.
func (c *Configurator) SetInitialGoal(g Goal) {
	if !g.Valid() || g == c.appliedInitialGoal {
		return
	}
	c.goal = g
	c.appliedInitialGoal = g
}

// SetInitialIntensity applies an intensity arriving from a direction
// selection, with the same once-per-value semantics as SetInitialGoal.
func (c *Configurator) SetInitialIntensity(i Intensity) {
	if !i.Valid() || i == c.appliedInitialIntensity {
		return
	}
	c.intensity = i
	c.appliedInitialIntensity = i
}

// Config returns the current selections as a value.
func (c *Configurator) Config() Config {
	return Config{
		Format:    c.format,
		Intensity: c.intensity,
		Frequency: c.frequency,
		Goal:      c.goal,
		Duration:  c.duration,
		Urgency:   c.urgency,
	}
}

// Price returns the per-lesson range for the current selections.
func (c *Configurator) Price() Range {
	return c.table.Calculate(c.Config())
}

// Monthly returns the monthly range for the current selections.
func (c *Configurator) Monthly() Range {
	return MonthlyEstimate(c.Price(), c.frequency)
}

// Apply freezes the current selections and computed estimate into a
// Selection snapshot. Synchronous and side-effect free; scrolling to the
// contact section is the caller's concern.
func (c *Configurator) Apply() Selection {
	price := c.Price()
	return Selection{
		Config:       c.Config(),
		EstimatedMin: price.Min,
		EstimatedMax: price.Max,
	}
}
