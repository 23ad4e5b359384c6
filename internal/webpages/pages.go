// Package webpages renders the browser-facing pages linked from
// transactional emails: email verification results and the password
// reset form. Everything else in the API speaks JSON.
package webpages

import (
	"bytes"
	"html/template"
)

const (
	gradientSuccess = "linear-gradient(135deg, #4CAF50 0%, #45a049 100%)"
	gradientWarning = "linear-gradient(135deg, #f59e0b 0%, #d97706 100%)"
	gradientError   = "linear-gradient(135deg, #ef4444 0%, #dc2626 100%)"
	gradientForm    = "linear-gradient(135deg, #2563eb 0%, #1d4ed8 100%)"
)

var statusTmpl = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} - {{.SiteName}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); min-height: 100vh; display: flex; align-items: center; justify-content: center; }
.container { max-width: 500px; background: white; border-radius: 10px; box-shadow: 0 10px 30px rgba(0,0,0,0.1); overflow: hidden; text-align: center; }
.header { background: {{.Gradient}}; color: white; padding: 30px; }
.header h1 { margin: 0; font-size: 28px; font-weight: 300; }
.content { padding: 40px; }
.content h2 { color: #333; margin-bottom: 20px; }
.content p { color: #666; margin-bottom: 20px; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>{{.SiteName}}</h1></div>
<div class="content">
<h2>{{.Heading}}</h2>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}</div>
</div>
</body>
</html>`))

var resetFormTmpl = template.Must(template.New("resetForm").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Reset Password - {{.SiteName}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); min-height: 100vh; display: flex; align-items: center; justify-content: center; }
.container { max-width: 400px; background: white; border-radius: 10px; box-shadow: 0 10px 30px rgba(0,0,0,0.1); overflow: hidden; }
.header { background: linear-gradient(135deg, #2563eb 0%, #1d4ed8 100%); color: white; padding: 30px; text-align: center; }
.header h1 { margin: 0; font-size: 28px; font-weight: 300; }
.content { padding: 40px; }
.form-group { margin-bottom: 20px; }
.form-group label { display: block; margin-bottom: 5px; color: #333; font-weight: 500; }
.form-group input { width: 100%; padding: 12px; border: 2px solid #e5e7eb; border-radius: 5px; font-size: 16px; box-sizing: border-box; }
.form-group input:focus { outline: none; border-color: #2563eb; }
.reset-button { width: 100%; background: linear-gradient(135deg, #2563eb 0%, #1d4ed8 100%); color: white; padding: 12px; border: none; border-radius: 5px; font-size: 16px; font-weight: bold; cursor: pointer; }
.password-requirements { font-size: 14px; color: #666; margin-top: 5px; }
.message { padding: 12px; border-radius: 5px; margin-bottom: 20px; display: none; }
.message.error { background: #fee2e2; color: #b91c1c; }
.message.success { background: #dcfce7; color: #15803d; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>{{.SiteName}}</h1></div>
<div class="content">
<div id="message" class="message"></div>
<form id="reset-form">
<div class="form-group">
<label for="new_password">New Password</label>
<input type="password" id="new_password" name="new_password" required minlength="8">
<div class="password-requirements">Minimum 8 characters required</div>
</div>
<div class="form-group">
<label for="confirm_password">Confirm New Password</label>
<input type="password" id="confirm_password" name="confirm_password" required minlength="8">
</div>
<button type="submit" class="reset-button">Reset Password</button>
</form>
</div>
</div>
<script>
document.getElementById('reset-form').addEventListener('submit', async function(e) {
  e.preventDefault();
  const messageEl = document.getElementById('message');
  const newPassword = document.getElementById('new_password').value;
  const confirmPassword = document.getElementById('confirm_password').value;
  if (newPassword.length < 8) {
    messageEl.className = 'message error';
    messageEl.style.display = 'block';
    messageEl.textContent = 'Password must be at least 8 characters long';
    return;
  }
  if (newPassword !== confirmPassword) {
    messageEl.className = 'message error';
    messageEl.style.display = 'block';
    messageEl.textContent = 'Passwords do not match';
    return;
  }
  try {
    const response = await fetch('/api/auth/reset-password', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ token: {{.Token}}, new_password: newPassword })
    });
    const data = await response.json();
    messageEl.style.display = 'block';
    if (data.return_code === 'SUCCESS') {
      messageEl.className = 'message success';
      messageEl.textContent = 'Password reset successfully. You can now log in with your new password.';
      document.getElementById('reset-form').style.display = 'none';
    } else {
      messageEl.className = 'message error';
      messageEl.textContent = data.message || 'Password reset failed';
    }
  } catch (err) {
    messageEl.className = 'message error';
    messageEl.style.display = 'block';
    messageEl.textContent = 'Something went wrong. Please try again.';
  }
});
</script>
</body>
</html>`))

type statusData struct {
	SiteName   string
	Title      string
	Gradient   template.CSS
	Heading    string
	Paragraphs []string
}

func renderStatus(d statusData) string {
	var buf bytes.Buffer
	if err := statusTmpl.Execute(&buf, d); err != nil {
		return "<html><body><p>" + template.HTMLEscapeString(d.Heading) + "</p></body></html>"
	}
	return buf.String()
}

func VerifySuccess(siteName string) string {
	return renderStatus(statusData{
		SiteName: siteName,
		Title:    "Email Verified",
		Gradient: gradientSuccess,
		Heading:  "Email Verified Successfully!",
		Paragraphs: []string{
			"Your email address has been verified. You can now log in to your account and enjoy all the features of " + siteName + ".",
			"You can close this window and return to the app.",
		},
	})
}

func VerifyExpired(siteName string) string {
	return renderStatus(statusData{
		SiteName: siteName,
		Title:    "Verification Link Expired",
		Gradient: gradientWarning,
		Heading:  "Verification Link Expired",
		Paragraphs: []string{
			"This verification link has expired or has already been used. Please request a new verification email from the app.",
		},
	})
}

func VerifyInvalid(siteName string) string {
	return renderStatus(statusData{
		SiteName: siteName,
		Title:    "Invalid Verification Link",
		Gradient: gradientError,
		Heading:  "Invalid Verification Link",
		Paragraphs: []string{
			"This verification link is invalid or malformed. Please check your email for the correct link or request a new verification email.",
		},
	})
}

func VerifyError(siteName string) string {
	return renderStatus(statusData{
		SiteName: siteName,
		Title:    "Verification Error",
		Gradient: gradientError,
		Heading:  "Verification Error",
		Paragraphs: []string{
			"An error occurred while verifying your email. Please try again or contact support.",
		},
	})
}

func ResetInvalid(siteName string) string {
	return renderStatus(statusData{
		SiteName: siteName,
		Title:    "Invalid Reset Link",
		Gradient: gradientError,
		Heading:  "Invalid Reset Link",
		Paragraphs: []string{
			"This password reset link is invalid or malformed. Please request a new password reset.",
		},
	})
}

func ResetExpired(siteName string) string {
	return renderStatus(statusData{
		SiteName: siteName,
		Title:    "Reset Link Expired",
		Gradient: gradientWarning,
		Heading:  "Reset Link Expired",
		Paragraphs: []string{
			"This password reset link has expired or has already been used. Please request a new password reset.",
		},
	})
}

// ResetForm embeds the token into the page script; template context
// escaping keeps it safe inside the JSON.stringify call.
func ResetForm(siteName, token string) string {
	var buf bytes.Buffer
	err := resetFormTmpl.Execute(&buf, struct {
		SiteName string
		Token    string
	}{SiteName: siteName, Token: token})
	if err != nil {
		return ResetInvalid(siteName)
	}
	return buf.String()
}
