package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/robsonmobile/coriolis/internal/domain/outfitting"
)

type moduleContext struct {
	template *outfitting.Template
	module   *outfitting.Module
}

func (ctx *moduleContext) reset() {
	ctx.template = nil
	ctx.module = nil
}

func InitializeModuleScenario(sc *godog.ScenarioContext) {
	modCtx := &moduleContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		modCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a module template "([^"]*)/([^"]*)" with attributes:$`, modCtx.templateWithAttributes)
	sc.Step(`^I build a module from the template$`, modCtx.buildModule)
	sc.Step(`^I set the "([^"]*)" modification to (-?\d+(?:\.\d+)?)$`, modCtx.setModification)
	sc.Step(`^I clear the "([^"]*)" modification$`, modCtx.clearModification)
	sc.Step(`^the effective "([^"]*)" value should be (-?\d+(?:\.\d+)?)$`, modCtx.effectiveValueShouldBe)
	sc.Step(`^the stored "([^"]*)" modification should read back as (-?\d+(?:\.\d+)?)$`, modCtx.storedModificationShouldBe)
	sc.Step(`^the module should have no modifications$`, modCtx.moduleShouldHaveNoModifications)
}

func (ctx *moduleContext) templateWithAttributes(grp, id string, table *godog.Table) error {
	tmpl, err := outfitting.NewTemplate(grp, id)
	if err != nil {
		return err
	}

	for i, row := range table.Rows {
		if i == 0 {
			// header row: attribute | value
			continue
		}
		if len(row.Cells) != 2 {
			return fmt.Errorf("row %d: expected 2 cells, got %d", i, len(row.Cells))
		}

		key := row.Cells[0].Value
		attr, ok := outfitting.ParseAttribute(key)
		if !ok {
			return fmt.Errorf("row %d: unknown attribute %q", i, key)
		}

		value, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid value %q: %w", i, row.Cells[1].Value, err)
		}

		tmpl.SetAttribute(attr, value)
	}

	ctx.template = tmpl
	return nil
}

func (ctx *moduleContext) buildModule() error {
	if ctx.template == nil {
		return fmt.Errorf("no template defined")
	}

	module, err := outfitting.NewFromTemplate(ctx.template)
	if err != nil {
		return err
	}

	ctx.module = module
	return nil
}

func (ctx *moduleContext) setModification(attrName string, valueText string) error {
	if ctx.module == nil {
		return fmt.Errorf("no module built")
	}

	attr, ok := outfitting.ParseAttribute(attrName)
	if !ok {
		return fmt.Errorf("unknown attribute %q", attrName)
	}

	value, err := strconv.ParseFloat(valueText, 64)
	if err != nil {
		return fmt.Errorf("invalid modification value %q: %w", valueText, err)
	}

	ctx.module.SetModValue(attr, value)
	return nil
}

func (ctx *moduleContext) clearModification(attrName string) error {
	if ctx.module == nil {
		return fmt.Errorf("no module built")
	}

	attr, ok := outfitting.ParseAttribute(attrName)
	if !ok {
		return fmt.Errorf("unknown attribute %q", attrName)
	}

	ctx.module.ClearModValue(attr)
	return nil
}

func (ctx *moduleContext) effectiveValueShouldBe(attrName string, expectedText string) error {
	if ctx.module == nil {
		return fmt.Errorf("no module built")
	}

	attr, ok := outfitting.ParseAttribute(attrName)
	if !ok {
		return fmt.Errorf("unknown attribute %q", attrName)
	}

	expected, err := strconv.ParseFloat(expectedText, 64)
	if err != nil {
		return fmt.Errorf("invalid expected value %q: %w", expectedText, err)
	}

	actual := ctx.module.EffectiveValue(attr)
	if math.Abs(actual-expected) > 1e-9 {
		return fmt.Errorf("expected effective %s to be %v, got %v", attrName, expected, actual)
	}
	return nil
}

func (ctx *moduleContext) storedModificationShouldBe(attrName string, expectedText string) error {
	if ctx.module == nil {
		return fmt.Errorf("no module built")
	}

	attr, ok := outfitting.ParseAttribute(attrName)
	if !ok {
		return fmt.Errorf("unknown attribute %q", attrName)
	}

	expected, err := strconv.ParseFloat(expectedText, 64)
	if err != nil {
		return fmt.Errorf("invalid expected value %q: %w", expectedText, err)
	}

	actual, stored := ctx.module.ModValue(attr)
	if !stored {
		return fmt.Errorf("no modification stored for %s", attrName)
	}
	if actual != expected {
		return fmt.Errorf("expected stored %s modification to read back as %v, got %v", attrName, expected, actual)
	}
	return nil
}

func (ctx *moduleContext) moduleShouldHaveNoModifications() error {
	if ctx.module == nil {
		return fmt.Errorf("no module built")
	}

	if ctx.module.HasModifications() {
		return fmt.Errorf("expected no modifications, got %d", len(ctx.module.ScaledMods()))
	}
	return nil
}
