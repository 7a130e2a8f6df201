package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/rules"
	"github.com/dmitrymomot/whitebox/pkg/validator"
)

func evenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "even N",
		Short: "Report whether an integer is even",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			even := rules.IsEven(n)
			a.evaluated(cmd, "is_even", even)
			writeln(cmd.OutOrStdout(), strconv.FormatBool(even))
			return nil
		},
	}
}

func divideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "divide A B",
		Short: "Divide A by B; division by zero yields 0",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat("a", args[0])
			if err != nil {
				return err
			}
			y, err := parseFloat("b", args[1])
			if err != nil {
				return err
			}
			q := rules.Divide(x, y)
			a.evaluated(cmd, "divide", q)
			writeln(cmd.OutOrStdout(), formatFloat(q))
			return nil
		},
	}
}

func gradeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grade SCORE",
		Short: "Map a score to a letter grade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := parseFloat("score", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, "get_grade", rules.GetGrade(score))
		},
	}
}

func triangleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "triangle A B C",
		Short: "Check whether three sides form a triangle",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sides [3]float64
			for i, name := range []string{"a", "b", "c"} {
				f, err := parseFloat(name, args[i])
				if err != nil {
					return err
				}
				sides[i] = f
			}
			return a.print(cmd, "is_triangle", rules.IsTriangle(sides[0], sides[1], sides[2]))
		},
	}
}

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status VALUE",
		Short: "Classify a number as Zero, Positive or Negative",
		Long:  "Classify a number as Zero, Positive or Negative. A VALUE that is not a number fails.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v any = args[0]
			if f, err := strconv.ParseFloat(args[0], 64); err == nil {
				v = f
			}
			st, err := rules.CheckNumberStatus(v)
			if err != nil {
				return err
			}
			return a.print(cmd, "check_number_status", st)
		},
	}
}

func passwordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "password VALUE",
		Short: "Check a password against the strength policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := rules.PasswordErrors(args[0])
			a.evaluated(cmd, "validate_password", err == nil)
			out := cmd.OutOrStdout()
			if err == nil {
				writeln(out, "valid")
				return nil
			}
			writeln(out, "invalid:", strings.Join(validator.ExtractValidationErrors(err).Codes("password"), ", "))
			return nil
		},
	}
}

func discountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discount TOTAL",
		Short: "Compute the discount for an order total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := parseFloat("total", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, "calculate_total_discount", formatFloat(rules.CalculateTotalDiscount(total)))
		},
	}
}

func loginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login USERNAME PASSWORD",
		Short: "Check username and password lengths",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, "validate_login", rules.ValidateLogin(args[0], args[1]))
		},
	}
}

func ageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "age N",
		Short: "Check whether an age is eligible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("age", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, "verify_age", rules.VerifyAge(n))
		},
	}
}

func categoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category PRICE",
		Short: "Bucket a product price into a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseFloat("price", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, "categorize_product", rules.CategorizeProduct(price))
		},
	}
}

func emailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "email VALUE",
		Short: "Check an email address shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, "validate_email", rules.ValidateEmail(args[0]))
		},
	}
}

func c2fCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "c2f CELSIUS",
		Short:   "Convert Celsius in [-100, 100] to Fahrenheit",
		Example: "  whitebox c2f 37\n  whitebox c2f -- -40",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseFloat("celsius", args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, "celsius_to_fahrenheit", rules.CelsiusToFahrenheit(c).String())
		},
	}
}

func (a *app) evaluated(cmd *cobra.Command, rule string, result any) {
	a.log.DebugContext(cmd.Context(), "rule evaluated", logger.Rule(rule), logger.Result(result))
}

func (a *app) print(cmd *cobra.Command, rule, result string) error {
	a.evaluated(cmd, rule, result)
	writeln(cmd.OutOrStdout(), result)
	return nil
}
