package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"
)

// optimizerClient talks to the genetic optimization service. The optimizer
// is a black box here: constraints in, proposed weekly bookings out.
type optimizerClient struct {
	BaseUrl string
	timeout time.Duration
}

func NewOptimizerClient(baseUrl string, timeout time.Duration) contracts.OptimizerClient {
	return &optimizerClient{
		BaseUrl: baseUrl + "/proposals",
		timeout: timeout,
	}
}

func (c *optimizerClient) ProposeBookings(ctx context.Context, request *requests.BookingProposal) ([]responses.ProposedSlot, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrOptimizerPropose(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var result struct {
		Bookings []responses.ProposedSlot `json:"bookings"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrTimetableDecodeResponse(err, constvars.TimetableResourceProposal)
	}

	return result.Bookings, nil
}
