package instructors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"

	"golang.org/x/time/rate"
)

type instructorBookingClient struct {
	BaseUrl string
	limiter *rate.Limiter
}

func NewInstructorBookingClient(baseUrl string, limiter *rate.Limiter) contracts.InstructorBookingClient {
	return &instructorBookingClient{
		BaseUrl: baseUrl + "/instructors",
		limiter: limiter,
	}
}

func (c *instructorBookingClient) FindBookingsByInstructorID(ctx context.Context, instructorID string, page, pageSize int) (*responses.BookingPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	url := fmt.Sprintf("%s/%s/bookings?page=%d&page_size=%d", c.BaseUrl, instructorID, page, pageSize)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrTimetableGetResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.TimetableResourceInstructor)
	}

	result := new(responses.BookingPage)
	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return nil, exceptions.ErrTimetableDecodeResponse(err, constvars.TimetableResourceInstructor)
	}

	return result, nil
}
