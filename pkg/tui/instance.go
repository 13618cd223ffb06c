package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-rddlgen/pkg/model"
)

// PromptInstance asks for any instance parameters the document leaves unset.
// Already-populated fields are never prompted for, so a fully specified
// problem file runs without interaction even in interactive mode.
func PromptInstance(ctx context.Context, driver PromptDriver, instance *model.Instance) error {
	if driver == nil {
		return fmt.Errorf("tui: prompt driver is required")
	}
	if instance == nil {
		return fmt.Errorf("tui: instance is required")
	}

	if strings.TrimSpace(instance.Name) == "" {
		name, err := driver.Input(ctx, InputConfig{
			Message:   "Instance name",
			Validator: validateIdentifier,
		})
		if err != nil {
			return err
		}
		instance.Name = name
	}

	if strings.TrimSpace(instance.Horizon) == "" {
		horizon, err := driver.Input(ctx, InputConfig{
			Message:   "Planning horizon",
			Default:   "40",
			Help:      "number of decision steps to plan for",
			Validator: validatePositiveInt,
		})
		if err != nil {
			return err
		}
		instance.Horizon = horizon
	}

	if strings.TrimSpace(instance.Discount) == "" {
		discount, err := driver.Input(ctx, InputConfig{
			Message:   "Discount factor",
			Default:   "1.0",
			Help:      "weight applied to future rewards, in (0, 1]",
			Validator: validateDiscount,
		})
		if err != nil {
			return err
		}
		instance.Discount = discount
	}

	if strings.TrimSpace(instance.MaxNonDefActions) == "" {
		options := []string{"pos-inf", "1", "other"}
		choice, err := driver.Select(ctx, SelectConfig{
			Message:      "Concurrent non-default action bound",
			Options:      options,
			DefaultIndex: 0,
		})
		if err != nil {
			return err
		}
		if choice >= 0 && options[choice] != "other" {
			instance.MaxNonDefActions = options[choice]
		} else {
			bound, err := driver.Input(ctx, InputConfig{
				Message:   "Action bound",
				Validator: validatePositiveInt,
			})
			if err != nil {
				return err
			}
			instance.MaxNonDefActions = bound
		}
	}

	return nil
}

func validateIdentifier(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("identifier is required")
	}
	if strings.ContainsAny(trimmed, " \t") {
		return fmt.Errorf("identifier must not contain whitespace")
	}
	return nil
}

func validatePositiveInt(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("expected an integer")
	}
	if n <= 0 {
		return fmt.Errorf("expected a positive integer")
	}
	return nil
}

func validateDiscount(value string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("expected a number")
	}
	if f <= 0 || f > 1 {
		return fmt.Errorf("discount must be in (0, 1]")
	}
	return nil
}
