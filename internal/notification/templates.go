package notification

import "html/template"

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: #f8f9fa; padding: 20px; border-radius: 5px; margin-bottom: 20px; }
      .footer { color: #666; font-size: 12px; margin-top: 30px; border-top: 1px solid #ddd; padding-top: 20px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>{{.CompanyName}}</h1>
      </div>
      <p>Dear {{.CustomerName}},</p>
      <p>Your invoice has been created{{if .HasAttachment}} and is attached to this email{{end}}.</p>
      <table style="width: 100%; border-collapse: collapse;">
        <tr>
          <td><strong>Invoice Number:</strong></td>
          <td>{{.InvoiceNumber}}</td>
        </tr>
        <tr>
          <td><strong>Amount Due:</strong></td>
          <td>{{.AmountDue}}</td>
        </tr>
        {{- if .DueDate}}
        <tr>
          <td><strong>Due Date:</strong></td>
          <td>{{.DueDate}}</td>
        </tr>
        {{- end}}
      </table>
      <p>If you have any questions, please don't hesitate to contact us.</p>
      <div class="footer">
        <p>This is an automated email. Please do not reply to this address.</p>
        <p>&copy; {{.Year}} {{.CompanyName}}. All rights reserved.</p>
      </div>
    </div>
  </body>
</html>
`))

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .button { background: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>Password Reset Request</h1>
      <p>Hi {{.UserName}},</p>
      <p>We received a request to reset your password. Click the button below to reset it:</p>
      <p><a href="{{.ResetLink}}" class="button">Reset Password</a></p>
      <p>This link will expire in {{.Expiry}}.</p>
      <p>If you didn't request this, please ignore this email.</p>
    </div>
  </body>
</html>
`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>Welcome to {{.AppName}}!</h1>
      <p>Hi {{.UserName}},</p>
      <p>Welcome to {{.AppName}}. We're excited to have you on board!</p>
      <p>You can now log in to your account and start managing your invoices.</p>
      <p>If you have any questions, feel free to contact our support team.</p>
      <p>Best regards,<br>{{.AppName}} Team</p>
    </div>
  </body>
</html>
`))
