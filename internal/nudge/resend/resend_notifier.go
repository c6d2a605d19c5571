package resend

import (
	"bytes"
	"context"
	"errors"
	"html/template"

	"github.com/resend/resend-go/v2"
)

type ResendNotifier struct {
	ApiKey string
	Email  string
	From   string
}

var emailTemplate = template.Must(template.New("email").Parse(`
<p>The following habit streaks end in {{.Hours}} hours unless you complete them today:</p>
<ul>
{{range .Habits}}
  <li>{{.}}</li>
{{end}}
</ul>
`))

func render(habits []string, hoursTillExpiry int) (string, error) {
	data := struct {
		Habits []string
		Hours  int
	}{
		Habits: habits,
		Hours:  hoursTillExpiry,
	}
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *ResendNotifier) SendNudge(ctx context.Context, habits []string, hoursTillExpiry int) error {
	if r.ApiKey == "" || r.Email == "" {
		return errors.New("resend api key and recipient email are required")
	}
	html, err := render(habits, hoursTillExpiry)
	if err != nil {
		return err
	}

	client := resend.NewClient(r.ApiKey)
	params := &resend.SendEmailRequest{
		From:    r.From,
		To:      []string{r.Email},
		Subject: "Streaks are expiring soon",
		Html:    html,
	}

	_, err = client.Emails.SendWithContext(ctx, params)
	return err
}
