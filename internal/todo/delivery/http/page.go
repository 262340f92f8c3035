package http

import "html/template"

const pageTemplateName = "index"

var pageTemplate = template.Must(template.New(pageTemplateName).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>To-do</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; background: #f4f5f7; margin: 0; }
main { max-width: 560px; margin: 48px auto; background: #fff; border-radius: 8px; padding: 24px; box-shadow: 0 1px 4px rgba(0,0,0,.08); }
#todo-form { display: flex; gap: 8px; margin-bottom: 16px; }
#todo-input { flex: 1; padding: 8px; font-size: 15px; }
#todo-list { list-style: none; padding: 0; margin: 0; }
.todo-item { display: flex; flex-wrap: wrap; align-items: center; gap: 6px; padding: 8px 0; border-bottom: 1px solid #eee; }
.todo-item > span { flex: 1; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.todo-item form { margin: 0; }
.todo-item.completed > span { text-decoration: line-through; color: #888; }
.todo-item.executed { background: #f0fbf6; }
.todo-meta { width: 100%; font-size: 12px; color: #666; }
.executed-badge { color: #138a5b; }
.toast { position: fixed; left: 50%; bottom: 24px; transform: translateX(-50%); background: #222; color: #fff; padding: 10px 16px; border-radius: 6px; opacity: 0; transition: opacity .2s; pointer-events: none; }
.toast.show { opacity: 1; }
</style>
</head>
<body>
<main>
<h1>To-do</h1>
<form id="todo-form" method="post" action="/api/v1/tasks">
  <input id="todo-input" name="text" type="text" placeholder="Add a task" autocomplete="off" autofocus>
  <button type="submit">Add</button>
</form>
<ul id="todo-list">
{{- range .Rows}}
  <li class="{{.Classes}}" data-id="{{.ID}}" data-executed="{{.Executed}}">
    <span title="{{.Label}}">{{.Label}}</span>
    <form method="post" action="/api/v1/tasks/{{.ID}}/toggle"><button type="submit" class="btn-done" title="Toggle completed">✔</button></form>
    <form method="post" action="/api/v1/tasks/{{.ID}}/execute"><button type="submit" class="btn-exec" title="Execute task">Execute</button></form>
    <form method="post" action="/api/v1/tasks/{{.ID}}/delete"><button type="submit" title="Remove">✖</button></form>
    <div class="todo-meta"><div{{if .Executed}} class="executed-badge"{{end}}>{{.Meta}}</div></div>
  </li>
{{- end}}
</ul>
<div id="toast" class="toast{{if .Notification.Visible}} show{{end}}" data-remaining-ms="{{.Notification.RemainingMS}}">{{.Notification.Text}}</div>
</main>
<script>
(function () {
  var toast = document.getElementById("toast");
  var ms = parseInt(toast.dataset.remainingMs, 10);
  if (ms > 0) {
    setTimeout(function () { toast.classList.remove("show"); }, ms);
  }

  // runTask("Buy milk") executes the matching task and resolves to whether one was found.
  window.runTask = function (text) {
    return fetch("/api/v1/tasks/run", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ text: text })
    })
      .then(function (r) { return r.json(); })
      .then(function (body) {
        location.reload();
        return !!(body.data && body.data.found);
      });
  };
})();
</script>
</body>
</html>
`
