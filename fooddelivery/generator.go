// Package fooddelivery synthesizes the food-delivery event stream:
// customers with addresses and login audits, restaurants with menus,
// delivery agents, and order flows tying them together.
package fooddelivery

import (
	"errors"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"

	"foodgen/gen"
	"foodgen/registry"
	"foodgen/validate"
)

// How many times a uniqueness-constrained factory re-rolls its candidate
// before giving up on that entity slot.
const maxUniquenessAttempts = 20

type Generator struct {
	cfg   gen.GeneratorConfig
	faker *gofakeit.Faker
	reg   *registry.Registry
	dist  gen.RandDist
	log   *logrus.Entry
}

// NewGenerator creates a generator with its own uniqueness registry. The
// registry lives as long as the generator, so keys stay unique across every
// batch of one run. A zero seed keeps generation nondeterministic; any
// other seed makes a run reproducible.
func NewGenerator(cfg gen.GeneratorConfig) *Generator {
	return &Generator{
		cfg:   cfg,
		faker: gofakeit.New(cfg.Seed),
		reg:   registry.New(),
		dist:  gen.NewRandDist(cfg),
		log:   logrus.WithField("component", "generator"),
	}
}

// Registry exposes the generator's uniqueness registry, e.g. to reset it
// between test cases.
func (g *Generator) Registry() *registry.Registry {
	return g.reg
}

func (g *Generator) dropInvalid(err error) {
	var f *validate.Failure
	if errors.As(err, &f) {
		g.log.WithFields(logrus.Fields{
			"entity":     f.Kind,
			"id":         f.Id,
			"violations": f.Violations,
		}).Warn("dropping invalid record")
		return
	}
	g.log.WithError(err).Warn("dropping invalid record")
}

func (g *Generator) phone() string {
	first := []string{"6", "7", "8", "9"}
	return first[g.faker.IntRange(0, 3)] + g.faker.DigitN(9)
}

func (g *Generator) yesNo() string {
	if g.faker.Bool() {
		return "Y"
	}
	return "N"
}

func (g *Generator) chance(p float32) bool {
	return g.faker.Float32Range(0, 1) < p
}

// quantity draws an order-item quantity in [1, 3]. The distribution skews
// towards 1 unless heavy-tail mode selects a uniform spread.
func (g *Generator) quantity() int {
	q := 1 + int(g.dist.Rand(2))
	if q > 3 {
		q = 3
	}
	return q
}
