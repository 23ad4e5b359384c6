package mail

import (
	"fmt"
	"html"
	"strings"
)

const emailShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; margin: 0; padding: 0; background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); }
.container { max-width: 600px; margin: 40px auto; background: white; border-radius: 10px; box-shadow: 0 10px 30px rgba(0,0,0,0.1); overflow: hidden; }
.header { background: linear-gradient(135deg, #4CAF50 0%%, #45a049 100%%); color: white; padding: 30px; text-align: center; }
.header h1 { margin: 0; font-size: 28px; font-weight: 300; }
.content { padding: 40px; text-align: center; }
.content h2 { color: #333; margin-bottom: 20px; }
.content p { color: #666; margin-bottom: 30px; }
.action-button { display: inline-block; background: linear-gradient(135deg, #4CAF50 0%%, #45a049 100%%); color: white; padding: 15px 30px; text-decoration: none; border-radius: 25px; font-weight: bold; }
.footer { background: #f8f9fa; padding: 20px; text-align: center; color: #888; font-size: 14px; }
.expiry-notice { background: #fff3cd; color: #856404; padding: 15px; border-radius: 5px; margin: 20px 0; font-size: 14px; }
table.order { width: 100%%; border-collapse: collapse; margin: 20px 0; }
table.order td { padding: 8px; border-bottom: 1px solid #eee; text-align: left; color: #444; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>%s</h1></div>
<div class="content">%s</div>
<div class="footer">%s</div>
</div>
</body>
</html>`

func verificationHTML(emailName, url string) string {
	body := fmt.Sprintf(`<h2>Verify Your Email Address</h2>
<p>Welcome to %[1]s! Please click the button below to verify your email address and complete your registration.</p>
<a href="%[2]s" class="action-button">Verify Email Address</a>
<div class="expiry-notice">This verification link will expire in 24 hours for security reasons.</div>
<p style="font-size:14px;color:#888;">If the button doesn't work, copy and paste this link into your browser:<br><a href="%[2]s">%[2]s</a></p>`,
		html.EscapeString(emailName), url)
	footer := fmt.Sprintf("<p>If you didn't create an account with %s, you can safely ignore this email.</p>", html.EscapeString(emailName))
	return fmt.Sprintf(emailShell, "Verify Your Email", html.EscapeString(emailName), body, footer)
}

func verificationText(emailName, url string) string {
	return fmt.Sprintf("Welcome to %s!\n\nPlease verify your email address by clicking the link below:\n%s\n\nThis link expires in 24 hours.\nIf you didn't create an account, you can safely ignore this email.\n", emailName, url)
}

func passwordResetHTML(emailName, url string) string {
	body := fmt.Sprintf(`<h2>Reset Your Password</h2>
<p>We received a request to reset the password for your %[1]s account. Click the button below to choose a new password.</p>
<a href="%[2]s" class="action-button">Reset Password</a>
<div class="expiry-notice">This reset link will expire in 1 hour for security reasons.</div>
<p style="font-size:14px;color:#888;">If the button doesn't work, copy and paste this link into your browser:<br><a href="%[2]s">%[2]s</a></p>`,
		html.EscapeString(emailName), url)
	footer := "<p>If you didn't request a password reset, you can safely ignore this email. Your password will not change.</p>"
	return fmt.Sprintf(emailShell, "Reset Your Password", html.EscapeString(emailName), body, footer)
}

func passwordResetText(emailName, url string) string {
	return fmt.Sprintf("We received a request to reset the password for your %s account.\n\nReset it here:\n%s\n\nThis link expires in 1 hour. If you didn't request this, you can ignore this email.\n", emailName, url)
}

func orderLinesHTML(items []OrderEmailItem) string {
	var b strings.Builder
	b.WriteString(`<table class="order">`)
	for _, it := range items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>x%d</td><td>&pound;%.2f</td></tr>",
			html.EscapeString(it.CategoryName), it.Quantity, it.TotalPrice)
	}
	b.WriteString("</table>")
	return b.String()
}

func orderConfirmationHTML(emailName string, data OrderEmailData) string {
	address := ""
	if data.DeliveryType == "delivery" {
		address = fmt.Sprintf("<p>Delivery address: %s</p>", html.EscapeString(data.DeliveryAddress))
	}
	body := fmt.Sprintf(`<h2>Thank You For Your Order!</h2>
<p>Your order <strong>%s</strong> has been received.</p>
%s
<p>%s on %s at %s &mdash; estimated preparation time %s.</p>
%s
<p><strong>Total: &pound;%.2f</strong></p>`,
		html.EscapeString(data.OrderNumber),
		orderLinesHTML(data.Items),
		html.EscapeString(data.DeliveryType),
		html.EscapeString(data.RequestedDate),
		html.EscapeString(data.RequestedTime),
		html.EscapeString(data.EstimatedTime),
		address,
		data.TotalAmount)
	footer := fmt.Sprintf("<p>Questions about your order? Reply to this email or call us.</p><p>%s</p>", html.EscapeString(emailName))
	return fmt.Sprintf(emailShell, "Order Confirmation", html.EscapeString(emailName), body, footer)
}

func orderConfirmationText(emailName string, data OrderEmailData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order!\n\nOrder %s\n", data.OrderNumber)
	for _, it := range data.Items {
		fmt.Fprintf(&b, "- %s x%d  GBP %.2f\n", it.CategoryName, it.Quantity, it.TotalPrice)
	}
	fmt.Fprintf(&b, "\n%s on %s at %s (estimated %s)\n", data.DeliveryType, data.RequestedDate, data.RequestedTime, data.EstimatedTime)
	if data.DeliveryType == "delivery" {
		fmt.Fprintf(&b, "Delivery address: %s\n", data.DeliveryAddress)
	}
	fmt.Fprintf(&b, "Total: GBP %.2f\n\n%s\n", data.TotalAmount, emailName)
	return b.String()
}

func businessNotificationHTML(emailName string, data OrderEmailData) string {
	body := fmt.Sprintf(`<h2>New Order %s</h2>
%s
<p><strong>Total: &pound;%.2f</strong></p>
<p>%s on %s at %s</p>
<p>Customer: %s / %s</p>`,
		html.EscapeString(data.OrderNumber),
		orderLinesHTML(data.Items),
		data.TotalAmount,
		html.EscapeString(data.DeliveryType),
		html.EscapeString(data.RequestedDate),
		html.EscapeString(data.RequestedTime),
		html.EscapeString(data.CustomerEmail),
		html.EscapeString(data.PhoneNumber))
	return fmt.Sprintf(emailShell, "New Order", html.EscapeString(emailName), body, "<p>Order notification</p>")
}

func businessNotificationText(data OrderEmailData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n\n", data.OrderNumber)
	for _, it := range data.Items {
		fmt.Fprintf(&b, "- %s x%d  GBP %.2f\n", it.CategoryName, it.Quantity, it.TotalPrice)
	}
	fmt.Fprintf(&b, "\nTotal: GBP %.2f\n%s on %s at %s\nCustomer: %s / %s\n",
		data.TotalAmount, data.DeliveryType, data.RequestedDate, data.RequestedTime, data.CustomerEmail, data.PhoneNumber)
	return b.String()
}
