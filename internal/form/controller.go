package form

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/unicode/norm"

	"github.com/dongycare/checker-backend/internal/entity"
	"github.com/dongycare/checker-backend/internal/pkg/validator"
)

// fallbackGroupTitle labels selections whose group is not in the
// catalog anymore, e.g. after a catalog revision.
const fallbackGroupTitle = "Khác"

var dataURLRe = regexp.MustCompile(`^data:(.*?);base64,(.*)$`)

// Sender delivers an assembled request to the relay and returns the
// analysis document bytes.
type Sender interface {
	Send(ctx context.Context, req *entity.AnalyzeRequest) ([]byte, error)
}

// Controller holds the state of one checklist form: the checked
// symptoms, the free-text field and the optional tongue photo. It is
// safe for concurrent use; only one Submit may be in flight at a time.
type Controller struct {
	catalog   []entity.SymptomGroup
	validator *validator.Validator
	sender    Sender

	mu       sync.Mutex
	selected map[entity.SelectionKey]bool
	freeText string
	image    string

	inFlight atomic.Bool
	result   *entity.AnalysisResult
}

func NewController(catalog []entity.SymptomGroup, v *validator.Validator, sender Sender) *Controller {
	return &Controller{
		catalog:   catalog,
		validator: v,
		sender:    sender,
		selected:  make(map[entity.SelectionKey]bool),
	}
}

// Toggle flips one checkbox and reports the new state. Toggling twice
// restores the previous state exactly.
func (c *Controller) Toggle(groupID, symptom string) bool {
	key := entity.SelectionKey{GroupID: groupID, Symptom: symptom}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selected[key] {
		delete(c.selected, key)
		return false
	}
	c.selected[key] = true
	return true
}

func (c *Controller) SetFreeText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.freeText = text
}

// AttachImage validates the tongue photo and stores it as a base64
// data URL, replacing any previous one. A rejected photo also clears
// the previous one, so a stale image never rides along on submit.
func (c *Controller) AttachImage(data []byte) error {
	mimeType, err := c.validator.ValidateImage(data, int64(len(data)))
	if err != nil {
		c.ClearImage()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	return nil
}

func (c *Controller) ClearImage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = ""
}

// Selected returns the checked symptoms in catalog order, each tagged
// with its group title. Selections from groups no longer in the
// catalog come last, sorted, under a generic label.
func (c *Controller) Selected() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedLocked()
}

func (c *Controller) selectedLocked() []string {
	known := make(map[entity.SelectionKey]bool, len(c.selected))

	var list []string
	for _, group := range c.catalog {
		for _, symptom := range group.Symptoms {
			key := entity.SelectionKey{GroupID: group.ID, Symptom: symptom}
			if c.selected[key] {
				known[key] = true
				list = append(list, fmt.Sprintf("%s (%s)", symptom, group.Title))
			}
		}
	}

	var orphans []string
	for key := range c.selected {
		if !known[key] {
			orphans = append(orphans, fmt.Sprintf("%s (%s)", key.Symptom, fallbackGroupTitle))
		}
	}
	sort.Strings(orphans)

	return append(list, orphans...)
}

// BuildRequest assembles the relay payload from the current form
// state. At least one symptom or an image is required.
func (c *Controller) BuildRequest() (*entity.AnalyzeRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	freeText := norm.NFC.String(strings.TrimSpace(c.freeText))
	symptoms := c.selectedLocked()
	if freeText != "" {
		symptoms = append(symptoms, freeText)
	}

	if len(symptoms) == 0 && c.image == "" {
		return nil, entity.ErrEmptyInput
	}

	userQuery := userQueryPrefix + strings.Join(symptoms, "; ")
	if c.image != "" {
		userQuery += tongueNote
	}

	parts := []entity.Part{{Text: userQuery}}

	if c.image != "" {
		m := dataURLRe.FindStringSubmatch(c.image)
		if m == nil {
			return nil, fmt.Errorf("%w: malformed data URL", entity.ErrImageDecode)
		}
		mimeType := m[1]
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		parts = append(parts, entity.Part{
			InlineData: &entity.InlineData{MimeType: mimeType, Data: m[2]},
		})
	}

	return &entity.AnalyzeRequest{
		SystemPrompt: SystemPrompt,
		ContentParts: parts,
	}, nil
}

// Submit sends the form and stores the decoded result. A second call
// while one is in flight fails immediately instead of queuing.
func (c *Controller) Submit(ctx context.Context) (*entity.AnalysisResult, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, entity.ErrAnalysisInFlight
	}
	defer c.inFlight.Store(false)

	req, err := c.BuildRequest()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.result = nil
	c.mu.Unlock()

	raw, err := c.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := UnwrapResponse(raw)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.result = result
	c.mu.Unlock()

	return result, nil
}

// Result returns the last successful analysis, or nil.
func (c *Controller) Result() *entity.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
