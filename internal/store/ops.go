package store

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Add returns a copy of tasks with a new incomplete task appended.
// Line breaks in text become spaces so the task stays on one line.
func Add(tasks []Task, text string) []Task {
	out := make([]Task, len(tasks), len(tasks)+1)
	copy(out, tasks)
	return append(out, Task{Content: lineBreaks.Replace(text)})
}

// SetCompletion returns a copy of tasks with the task at index marked
// completed or not. An out-of-range index leaves the copy unchanged.
func SetCompletion(tasks []Task, index int, completed bool) []Task {
	out := clone(tasks)
	if inRange(tasks, index) {
		out[index].Completed = completed
	}
	return out
}

// DeleteAt returns a copy of tasks without the task at index.
// Later tasks shift down by one. An out-of-range index is a no-op.
func DeleteAt(tasks []Task, index int) []Task {
	if !inRange(tasks, index) {
		return clone(tasks)
	}
	out := make([]Task, 0, len(tasks)-1)
	out = append(out, tasks[:index]...)
	return append(out, tasks[index+1:]...)
}

func inRange(tasks []Task, index int) bool {
	return index >= 0 && index < len(tasks)
}

func clone(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
