package console

import (
	"fmt"
	"time"

	"github.com/avdeev/taskdeck/internal/task"
)

// addTask prompts for every creatable field and appends the task.
// Validation failures are rendered and the flow returns to the menu.
func (c *Console) addTask() {
	title, ok := c.readLine("Title: ")
	if !ok {
		return
	}
	description, ok := c.readLine("Description (optional): ")
	if !ok {
		return
	}

	status, ok := c.pickStatusDefault(task.StatusPending)
	if !ok {
		return
	}
	difficulty, ok := c.pickDifficultyDefault(task.DifficultyEasy)
	if !ok {
		return
	}
	priority, ok := c.pickPriorityDefault(task.PriorityMedium)
	if !ok {
		return
	}

	due, ok, err := c.readDueDate()
	if !ok {
		return
	}
	if err != nil {
		c.printError(err)
		return
	}

	t, err := c.store.Add(title, description, status, difficulty, priority, due)
	if err != nil {
		c.printError(err)
		return
	}
	c.persist()
	c.printf("%sAdded %q.%s\n", colorGreen, t.Title, colorReset)
}

// pickStatus prompts for a status with no default; 0 backs out.
func (c *Console) pickStatus() (task.Status, bool) {
	for st := task.StatusPending; st <= task.StatusCancelled; st++ {
		c.printf(" %d) %s\n", int(st)+1, st.Label())
	}
	c.printf(" 0) Back\n")

	choice, ok := c.readChoice("> ")
	if !ok || choice < 1 || choice > 4 {
		return 0, false
	}
	return task.Status(choice - 1), true
}

// pickStatusDefault is the add-flow variant: empty input keeps the default.
func (c *Console) pickStatusDefault(def task.Status) (task.Status, bool) {
	for st := task.StatusPending; st <= task.StatusCancelled; st++ {
		c.printf(" %d) %s\n", int(st)+1, st.Label())
	}
	line, ok := c.readLine(fmt.Sprintf("Status [%s]: ", def.Label()))
	if !ok {
		return 0, false
	}
	if n, found := numericPick(line, 4); found {
		return task.Status(n - 1), true
	}
	return def, true
}

func (c *Console) pickDifficulty() (task.Difficulty, bool) {
	for d := task.DifficultyHard; d <= task.DifficultyEasy; d++ {
		c.printf(" %d) %s\n", int(d)+1, d.Label())
	}
	c.printf(" 0) Back\n")

	choice, ok := c.readChoice("> ")
	if !ok || choice < 1 || choice > 3 {
		return 0, false
	}
	return task.Difficulty(choice - 1), true
}

func (c *Console) pickDifficultyDefault(def task.Difficulty) (task.Difficulty, bool) {
	for d := task.DifficultyHard; d <= task.DifficultyEasy; d++ {
		c.printf(" %d) %s\n", int(d)+1, d.Label())
	}
	line, ok := c.readLine(fmt.Sprintf("Difficulty [%s]: ", def.Label()))
	if !ok {
		return 0, false
	}
	if n, found := numericPick(line, 3); found {
		return task.Difficulty(n - 1), true
	}
	return def, true
}

func (c *Console) pickPriority() (task.Priority, bool) {
	for p := task.PriorityLow; p <= task.PriorityUrgent; p++ {
		c.printf(" %d) %s\n", int(p)+1, p.Label())
	}
	c.printf(" 0) Back\n")

	choice, ok := c.readChoice("> ")
	if !ok || choice < 1 || choice > 4 {
		return 0, false
	}
	return task.Priority(choice - 1), true
}

func (c *Console) pickPriorityDefault(def task.Priority) (task.Priority, bool) {
	for p := task.PriorityLow; p <= task.PriorityUrgent; p++ {
		c.printf(" %d) %s\n", int(p)+1, p.Label())
	}
	line, ok := c.readLine(fmt.Sprintf("Priority [%s]: ", def.Label()))
	if !ok {
		return 0, false
	}
	if n, found := numericPick(line, 4); found {
		return task.Priority(n - 1), true
	}
	return def, true
}

// numericPick parses a 1-based selection capped at max. Anything else
// reports not-found so callers fall back to their default.
func numericPick(line string, max int) (int, bool) {
	var n int
	if _, err := fmt.Sscanf(line, "%d", &n); err != nil {
		return 0, false
	}
	if n < 1 || n > max {
		return 0, false
	}
	return n, true
}

// dueLayouts are accepted due date input formats, tried in order.
var dueLayouts = []string{"2006-01-02 15:04", "2006-01-02"}

// parseDueDate interprets user input as a local-time instant. Empty
// input means no due date.
func parseDueDate(line string) (*time.Time, error) {
	if line == "" {
		return nil, nil
	}
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, line, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: unrecognized date %q", task.ErrValidation, line)
}
