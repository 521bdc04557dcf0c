package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tool-rental-checkout/internal/domain"
	"tool-rental-checkout/internal/logger"
	"tool-rental-checkout/internal/report"
	"tool-rental-checkout/internal/service"
	"tool-rental-checkout/internal/utils"
)

// errQuit ends an interactive session
var errQuit = errors.New("quit")

// Session drives checkouts from a line-oriented input stream
type Session struct {
	svc       service.CheckoutService
	formatter *report.Formatter
	in        *bufio.Scanner
	out       io.Writer
}

func NewSession(svc service.CheckoutService, formatter *report.Formatter, in io.Reader, out io.Writer) *Session {
	return &Session{
		svc:       svc,
		formatter: formatter,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// ParseRequest converts raw user input into a rental request. Range checks
// are left to the calculator.
func ParseRequest(toolCode, rentalDays, checkoutDate, discountPercent string) (domain.RentalRequest, error) {
	days, err := strconv.Atoi(strings.TrimSpace(rentalDays))
	if err != nil {
		return domain.RentalRequest{}, fmt.Errorf("rental days must be a whole number: %q", rentalDays)
	}

	date, err := utils.ParseCheckoutDate(checkoutDate)
	if err != nil {
		return domain.RentalRequest{}, fmt.Errorf("invalid checkout date: %w", err)
	}

	discount, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(discountPercent), "%"))
	if err != nil {
		return domain.RentalRequest{}, fmt.Errorf("discount percent must be a whole number: %q", discountPercent)
	}

	return domain.RentalRequest{
		ToolCode:        strings.ToUpper(strings.TrimSpace(toolCode)),
		RentalDays:      days,
		CheckoutDate:    date,
		DiscountPercent: discount,
	}, nil
}

// RunOnce checks out a single request and writes its report
func (s *Session) RunOnce(ctx context.Context, req domain.RentalRequest) error {
	agreement, err := s.svc.Checkout(ctx, req)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.out, s.formatter.Format(*agreement))
	return err
}

// Run prompts for checkouts until the user quits or input ends.
// Bad input is reported and the prompts start over.
func (s *Session) Run(ctx context.Context) error {
	if err := s.printCatalog(ctx); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Enter q at any prompt to quit.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		req, err := s.readRequest()
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			var inputErr *inputError
			if errors.As(err, &inputErr) {
				fmt.Fprintf(s.out, "Error: %v\n\n", inputErr.err)
				continue
			}
			return err
		}

		fmt.Fprintln(s.out)
		if err := s.RunOnce(ctx, req); err != nil {
			if !errors.Is(err, domain.ErrInvalidArgument) {
				return err
			}
			logger.Debug("Checkout rejected", "error", err)
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		fmt.Fprintln(s.out)
	}
}

type inputError struct {
	err error
}

func (e *inputError) Error() string { return e.err.Error() }

func (s *Session) readRequest() (domain.RentalRequest, error) {
	fields := make([]string, 0, 4)
	for _, label := range []string{
		"Enter tool code: ",
		"Enter rental days: ",
		"Enter checkout date (MM/DD/YYYY): ",
		"Enter discount percent: ",
	} {
		v, err := s.prompt(label)
		if err != nil {
			return domain.RentalRequest{}, err
		}
		fields = append(fields, v)
	}

	req, err := ParseRequest(fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		return domain.RentalRequest{}, &inputError{err: err}
	}
	return req, nil
}

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errQuit
	}
	v := strings.TrimSpace(s.in.Text())
	switch strings.ToLower(v) {
	case "q", "quit", "exit":
		return "", errQuit
	}
	return v, nil
}

func (s *Session) printCatalog(ctx context.Context) error {
	tools, err := s.svc.ListTools(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Available tools:")
	for _, t := range tools {
		line := fmt.Sprintf("  %-6s %-12s %s", t.Code, t.Category, t.Brand)
		if p, err := s.svc.GetPolicy(ctx, t.Category); err == nil {
			line += "  " + s.formatter.Money(p.DailyChargeCents) + "/day"
		}
		fmt.Fprintln(s.out, line)
	}
	return nil
}
