/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tomoncle/librarian"
	"github.com/tomoncle/librarian/entity"
	"github.com/tomoncle/librarian/repository"
)

// Library is the unit of work the console runs its actions in.
type Library = librarian.UnitOfWork[repository.LibraryRepository]

// Console reads menu choices and field values line by line.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	library *Library
	logger  logrus.FieldLogger
}

type action struct {
	key   int
	label string
	run   func(c *Console, ctx context.Context) error
}

var actions = []action{
	{1, "Add student", (*Console).addStudent},
	{2, "Add book", (*Console).addBook},
	{3, "Show borrows", (*Console).showBorrows},
	{4, "Add borrow", (*Console).addBorrow},
	{5, "List students", (*Console).listStudents},
	{6, "List books", (*Console).listBooks},
}

// errInput marks a field that could not be parsed; the action is skipped.
var errInput = errors.New("invalid input")

func New(in io.Reader, out io.Writer, library *Library, logger logrus.FieldLogger) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		library: library,
		logger:  logger,
	}
}

// Run loops until the user picks a number outside the menu, enters
// something that is not a number, input ends or ctx is cancelled. Failed
// actions are reported and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printMenu()
		line, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			return nil
		}
		act, found := lookupAction(choice)
		if !found {
			return nil
		}
		if err := act.run(c, ctx); err != nil {
			c.report(act.label, err)
		}
	}
}

func lookupAction(key int) (action, bool) {
	for _, a := range actions {
		if a.key == key {
			return a, true
		}
	}
	return action{}, false
}

func (c *Console) printMenu() {
	c.println("====================")
	for _, a := range actions {
		c.printf("%d. %s\n", a.key, a.label)
	}
	c.printf("Choose an action (any other number exits): ")
}

func (c *Console) report(label string, err error) {
	switch {
	case errors.Is(err, errInput):
		c.printf("%s failed: %v\n", label, err)
	case errors.Is(err, repository.ErrInvalidEntity):
		c.printf("%s failed, please check the values and retry: %v\n", label, err)
	case errors.Is(err, repository.ErrConstraintViolation):
		c.printf("%s failed, the referenced student or book does not exist\n", label)
		c.logger.WithError(err).Warn("Write rejected by the store")
	default:
		c.printf("%s failed: %v\n", label, err)
		c.logger.WithError(err).Error("Action failed")
	}
}

func (c *Console) addStudent(ctx context.Context) error {
	name, _ := c.prompt("Student name: ")
	rawSex, _ := c.prompt("Student sex (M/F): ")
	rawGrade, _ := c.prompt("Student grade (enrolment year): ")
	sex, err := entity.ParseSex(rawSex)
	if err != nil {
		return fmt.Errorf("%w: %w", errInput, err)
	}
	grade, err := parseInt(rawGrade)
	if err != nil {
		return err
	}

	student := entity.NewStudent(name, sex, grade)
	return c.library.Do(ctx, func(ctx context.Context, repo repository.LibraryRepository) error {
		n, err := repo.InsertStudent(ctx, student)
		if err != nil {
			return err
		}
		if n == 0 {
			c.println("Student was not saved, please retry")
			return nil
		}
		c.printf("Student saved with id %d\n", student.ID)
		c.logger.WithField("student", student.String()).Info("New student added")
		return nil
	})
}

func (c *Console) addBook(ctx context.Context) error {
	title, _ := c.prompt("Book title: ")
	info, _ := c.prompt("Book description: ")
	rawPrice, _ := c.prompt("Book price: ")
	price, err := parseFloat(rawPrice)
	if err != nil {
		return err
	}

	book := entity.NewBook(title, info, price)
	return c.library.Do(ctx, func(ctx context.Context, repo repository.LibraryRepository) error {
		n, err := repo.InsertBook(ctx, book)
		if err != nil {
			return err
		}
		if n == 0 {
			c.println("Book was not saved, please retry")
			return nil
		}
		c.printf("Book saved with id %d\n", book.ID)
		c.logger.WithField("book", book.String()).Info("New book added")
		return nil
	})
}

func (c *Console) addBorrow(ctx context.Context) error {
	rawBook, _ := c.prompt("Book id: ")
	rawStudent, _ := c.prompt("Student id: ")
	bookID, err := parseID(rawBook)
	if err != nil {
		return err
	}
	studentID, err := parseID(rawStudent)
	if err != nil {
		return err
	}

	return c.library.Do(ctx, func(ctx context.Context, repo repository.LibraryRepository) error {
		n, err := repo.InsertBorrow(ctx, studentID, bookID)
		if err != nil {
			return err
		}
		if n == 0 {
			c.println("Borrow was not saved, please retry")
			return nil
		}
		c.println("Borrow saved")
		c.logger.WithFields(logrus.Fields{"book_id": bookID, "student_id": studentID}).Info("New borrow added")
		return nil
	})
}

func (c *Console) showBorrows(ctx context.Context) error {
	return c.library.Do(ctx, func(ctx context.Context, repo repository.LibraryRepository) error {
		borrows, err := repo.ListBorrows(ctx)
		if err != nil {
			return err
		}
		if len(borrows) == 0 {
			c.println("No borrows yet")
		}
		for _, b := range borrows {
			c.printf("%s -> %s\n", b.Student.Name, b.Book.Title)
		}
		return nil
	})
}

func (c *Console) listStudents(ctx context.Context) error {
	return c.library.Do(ctx, func(ctx context.Context, repo repository.LibraryRepository) error {
		students, err := repo.ListStudents(ctx)
		if err != nil {
			return err
		}
		for _, s := range students {
			c.printf("%d\t%s\t%s\t%d\n", s.ID, s.Name, s.Sex, s.Grade)
		}
		return nil
	})
}

func (c *Console) listBooks(ctx context.Context) error {
	return c.library.Do(ctx, func(ctx context.Context, repo repository.LibraryRepository) error {
		books, err := repo.ListBooks(ctx)
		if err != nil {
			return err
		}
		for _, b := range books {
			c.printf("%d\t%s\t%.2f\t%s\n", b.ID, b.Title, b.Price, b.Info)
		}
		return nil
	})
}

func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	return c.readLine()
}

// parseInt, parseID and parseFloat run once every field of an action has been
// read, so a bad value never leaves later answers to be taken as menu choices.
func parseInt(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", errInput, raw)
	}
	return v, nil
}

func parseID(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", errInput, raw)
	}
	return v, nil
}

func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInput, raw)
	}
	return v, nil
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}
