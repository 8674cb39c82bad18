package entity

import "testing"

func buildWorkflow() Workflow {
	return Workflow{
		ID:   "wf1",
		Name: "Feature",
		Steps: []Step{
			{Index: 0, Name: "Plan", Status: StepCompleted},
			{Index: 1, Name: "Implement", Status: StepRunning},
			{Index: 2, Name: "Review", Status: StepPending},
			{Index: 3, Name: "Ship", Status: StepPending},
		},
	}
}

func TestWorkflowCurrentAndNext(t *testing.T) {
	w := buildWorkflow()
	current, ok := w.CurrentStep()
	if !ok || current.Name != "Implement" {
		t.Fatalf("CurrentStep = %+v, %v", current, ok)
	}
	next, ok := w.NextPending()
	if !ok || next.Name != "Review" {
		t.Fatalf("NextPending = %+v, %v", next, ok)
	}
	if got := w.Progress(); got != 25 {
		t.Fatalf("Progress = %d, want 25", got)
	}
}

func TestWorkflowStepTransitions(t *testing.T) {
	w := buildWorkflow()
	if w.StartStep(2) {
		t.Fatal("StartStep should refuse while another step runs")
	}
	if !w.CompleteStep(1) {
		t.Fatal("CompleteStep failed for running step")
	}
	if !w.StartStep(2) {
		t.Fatal("StartStep failed once no step is running")
	}
	if w.Steps[2].Status != StepRunning {
		t.Fatalf("step status = %s, want running", w.Steps[2].Status)
	}
	if !w.SkipStep(3) {
		t.Fatal("SkipStep failed for pending step")
	}
	if w.SkipStep(0) {
		t.Fatal("SkipStep should refuse for completed step")
	}
	if w.CompleteStep(7) {
		t.Fatal("CompleteStep should refuse out-of-range index")
	}
}

func TestWorkflowStoreDeepCopies(t *testing.T) {
	store := NewWorkflowStore()
	store.SetWorkflows([]Workflow{buildWorkflow()})

	got, ok := store.Find("wf1")
	if !ok {
		t.Fatal("Find failed for known id")
	}
	got.Steps[0].Status = StepSkipped

	again, _ := store.Find("wf1")
	if again.Steps[0].Status != StepCompleted {
		t.Fatal("Find should return a deep copy of steps")
	}
}
