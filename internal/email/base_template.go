package email

import (
	"bytes"
	"html/template"
)

// BrandName appears in the header and footer of every email.
const BrandName = "BeDaie"

// BaseEmailData contains data for the base email wrapper
type BaseEmailData struct {
	Content template.HTML
	Subject string
	Brand   string
}

// baseEmailTemplate is the reusable wrapper for all emails
const baseEmailTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            margin: 0;
            padding: 0;
            background-color: #f5f5f5;
        }
        .email-wrapper {
            max-width: 600px;
            margin: 0 auto;
            background-color: #ffffff;
        }
        .header {
            background-color: #0F766E;
            padding: 20px 30px;
        }
        .brand-name {
            font-size: 20px;
            font-weight: 700;
            color: #ffffff;
            margin: 0;
        }
        .content {
            padding: 30px 20px;
        }
        .footer {
            background-color: #134E4A;
            color: #cccccc;
            padding: 20px;
            text-align: center;
            font-size: 12px;
        }
        @media only screen and (max-width: 600px) {
            .header {
                padding: 15px 20px;
            }
            .content {
                padding: 20px 15px;
            }
        }
    </style>
</head>
<body>
    <div class="email-wrapper">
        <div class="header">
            <div class="brand-name">{{.Brand}}</div>
        </div>

        <div class="content">
            {{.Content}}
        </div>

        <div class="footer">
            You are receiving this email because you started a checkout powered by {{.Brand}}.
        </div>
    </div>
</body>
</html>
`

var baseEmail = template.Must(template.New("base").Parse(baseEmailTemplate))

// WrapEmailContent wraps content in the base email template
func WrapEmailContent(content string, subject string) (string, error) {
	data := BaseEmailData{
		Content: template.HTML(content),
		Subject: subject,
		Brand:   BrandName,
	}

	var result bytes.Buffer
	if err := baseEmail.Execute(&result, data); err != nil {
		return "", err
	}

	return result.String(), nil
}
