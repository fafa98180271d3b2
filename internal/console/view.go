package console

import (
	"errors"
	"time"

	"github.com/avdeev/taskdeck/internal/store"
	"github.com/avdeev/taskdeck/internal/task"
)

// viewTasks shows the list submenu: all tasks, a status filter, or one
// of the sort criteria. Selecting a listed task opens its detail menu.
func (c *Console) viewTasks() {
	c.printf("\n%sView%s\n", colorBold, colorReset)
	c.printf(" 1) All active\n")
	c.printf(" 2) By status\n")
	c.printf(" 3) Sorted\n")
	c.printf(" 0) Back\n")

	choice, ok := c.readChoice("> ")
	if !ok {
		return
	}

	var tasks []task.Task
	switch choice {
	case 1:
		tasks = c.store.ListActive()
	case 2:
		status, picked := c.pickStatus()
		if !picked {
			return
		}
		tasks = c.store.ListByStatus(status)
	case 3:
		by, picked := c.pickSort()
		if !picked {
			return
		}
		sorted, err := c.store.Sort(by)
		if err != nil {
			c.printError(err)
			return
		}
		tasks = sorted
	default:
		return
	}

	c.browseList(tasks)
}

// searchTasks prompts for a substring and lists case-insensitive title
// matches among active tasks.
func (c *Console) searchTasks() {
	query, ok := c.readLine("Search title: ")
	if !ok || query == "" {
		return
	}
	c.browseList(c.store.SearchTitle(query))
}

// showCritical lists tasks matching the criticality rule.
func (c *Console) showCritical() {
	tasks := c.store.ListCritical()
	if len(tasks) == 0 {
		c.printf("%sNo critical tasks.%s\n", colorDim, colorReset)
		return
	}
	c.browseList(tasks)
}

// browseList renders a numbered task list and opens the detail menu for
// a 1-based selection. 0 or anything unrecognized backs out.
func (c *Console) browseList(tasks []task.Task) {
	if len(tasks) == 0 {
		c.printf("%sNo tasks found.%s\n", colorDim, colorReset)
		return
	}

	c.printf("\n")
	for i, t := range tasks {
		c.printTaskLine(i+1, t)
	}

	choice, ok := c.readChoice("Select task # (0 back): ")
	if !ok || choice < 1 || choice > len(tasks) {
		return
	}
	c.taskDetail(tasks[choice-1].ID)
}

// taskDetail shows one task and its edit menu, re-rendering after every
// mutation until the user backs out or the task stops being visible.
func (c *Console) taskDetail(id string) {
	for {
		t, found := c.store.FindByID(id)
		if !found {
			return
		}
		c.printTaskDetail(t)

		c.printf(" 1) Edit title       6) Edit due date\n")
		c.printf(" 2) Edit description 7) Relations\n")
		c.printf(" 3) Edit status      8) Delete\n")
		c.printf(" 4) Edit difficulty  9) Delete permanently\n")
		c.printf(" 5) Edit priority    0) Back\n")

		choice, ok := c.readChoice("> ")
		if !ok {
			return
		}

		switch choice {
		case 0:
			return
		case 1:
			title, ok := c.readLine("New title: ")
			if !ok {
				return
			}
			c.apply(c.store.SetTitle(id, title))
		case 2:
			desc, ok := c.readLine("New description: ")
			if !ok {
				return
			}
			c.apply(c.store.SetDescription(id, desc))
		case 3:
			status, picked := c.pickStatus()
			if picked {
				c.apply(c.store.SetStatus(id, status))
			}
		case 4:
			difficulty, picked := c.pickDifficulty()
			if picked {
				c.apply(c.store.SetDifficulty(id, difficulty))
			}
		case 5:
			priority, picked := c.pickPriority()
			if picked {
				c.apply(c.store.SetPriority(id, priority))
			}
		case 6:
			due, ok, err := c.readDueDate()
			if !ok {
				return
			}
			if err != nil {
				c.printError(err)
				continue
			}
			c.apply(c.store.SetDueDate(id, due))
		case 7:
			c.relationsMenu(id)
		case 8:
			c.apply(c.store.SoftDelete(id))
			return
		case 9:
			if c.store.HardDelete(id) {
				c.persist()
				c.printf("Task removed permanently.\n")
			}
			return
		}
	}
}

// relationsMenu lists a task's resolvable relations and lets the user
// add or remove one.
func (c *Console) relationsMenu(id string) {
	related, err := c.store.ListRelated(id)
	if err != nil {
		c.printError(err)
		return
	}

	c.printf("\n%sRelated tasks%s\n", colorBold, colorReset)
	if len(related) == 0 {
		c.printf("%s  none%s\n", colorDim, colorReset)
	}
	for i, t := range related {
		c.printTaskLine(i+1, t)
	}
	c.printf(" 1) Add relation\n")
	c.printf(" 2) Remove relation\n")
	c.printf(" 0) Back\n")

	choice, ok := c.readChoice("> ")
	if !ok {
		return
	}

	switch choice {
	case 1:
		candidates := c.store.Filter(func(t task.Task) bool { return t.ID != id })
		if len(candidates) == 0 {
			c.printf("%sNo other tasks to relate.%s\n", colorDim, colorReset)
			return
		}
		for i, t := range candidates {
			c.printTaskLine(i+1, t)
		}
		pick, ok := c.readChoice("Relate to # (0 back): ")
		if !ok || pick < 1 || pick > len(candidates) {
			return
		}
		if err := c.store.Relate(id, candidates[pick-1].ID); err != nil {
			c.printError(err)
			return
		}
		c.persist()
		c.printf("Related.\n")
	case 2:
		if len(related) == 0 {
			return
		}
		pick, ok := c.readChoice("Remove relation # (0 back): ")
		if !ok || pick < 1 || pick > len(related) {
			return
		}
		if err := c.store.Unrelate(id, related[pick-1].ID); err != nil {
			c.printError(err)
			return
		}
		c.persist()
		c.printf("Relation removed.\n")
	}
}

// viewDeleted lists soft-deleted tasks with restore and purge actions.
func (c *Console) viewDeleted() {
	deleted := c.store.ListDeleted()
	if len(deleted) == 0 {
		c.printf("%sNo deleted tasks.%s\n", colorDim, colorReset)
		return
	}

	c.printf("\n")
	for i, t := range deleted {
		c.printTaskLine(i+1, t)
	}

	choice, ok := c.readChoice("Select task # (0 back): ")
	if !ok || choice < 1 || choice > len(deleted) {
		return
	}
	id := deleted[choice-1].ID

	c.printf(" 1) Restore\n")
	c.printf(" 2) Delete permanently\n")
	c.printf(" 0) Back\n")

	action, ok := c.readChoice("> ")
	if !ok {
		return
	}
	switch action {
	case 1:
		c.apply(c.store.Restore(id))
	case 2:
		if c.store.HardDelete(id) {
			c.persist()
			c.printf("Task removed permanently.\n")
		}
	}
}

// apply renders a mutation result: errors are shown and the session
// continues; successes persist immediately.
func (c *Console) apply(t task.Task, err error) {
	if err != nil {
		c.printError(err)
		return
	}
	c.persist()
	c.printf("Updated %q.\n", t.Title)
}

func (c *Console) printError(err error) {
	switch {
	case errors.Is(err, task.ErrValidation):
		c.printf("%sInvalid input: %v%s\n", colorYellow, err, colorReset)
	case errors.Is(err, task.ErrNotFound):
		c.printf("%sNot found: %v%s\n", colorYellow, err, colorReset)
	default:
		c.printf("%sError: %v%s\n", colorRed, err, colorReset)
	}
}

// pickSort shows the sort criteria menu.
func (c *Console) pickSort() (store.SortBy, bool) {
	c.printf(" 1) Title\n")
	c.printf(" 2) Newest first\n")
	c.printf(" 3) Due date\n")
	c.printf(" 4) Difficulty\n")
	c.printf(" 0) Back\n")

	choice, ok := c.readChoice("> ")
	if !ok {
		return "", false
	}
	switch choice {
	case 1:
		return store.SortByTitle, true
	case 2:
		return store.SortByCreated, true
	case 3:
		return store.SortByDue, true
	case 4:
		return store.SortByDifficulty, true
	default:
		return "", false
	}
}

// readDueDate reads an optional due instant. Empty input means no due
// date. ok is false once input is exhausted.
func (c *Console) readDueDate() (*time.Time, bool, error) {
	line, ok := c.readLine("Due date (YYYY-MM-DD or YYYY-MM-DD HH:MM, empty for none): ")
	if !ok {
		return nil, false, nil
	}
	due, err := parseDueDate(line)
	return due, true, err
}
