package site

// pageTemplate is the Go html/template for each documentation page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-page-path="{{.Path}}" data-build-id="{{.BuildID}}" data-base-path="{{.BasePath}}">
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <a href="{{.BasePath}}index.html" class="site-title">{{.SiteTitle}}</a>
      <input type="text" id="search-input" placeholder="Search docs..." autocomplete="off">
      <div class="search-results" id="search-results"></div>
    </div>
    <div class="sidebar-nav" id="sidebar-nav">
      {{.SidebarHTML}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <article class="page-content">
      {{.Content}}
    </article>
    {{.NextStepsHTML}}
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the full CSS for the documentation site.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --link: #228be6;
  --sidebar-width: 280px;
  --content-max-width: 860px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

[data-theme="dark"] {
  --bg: #1a1b1e;
  --bg-secondary: #25262b;
  --bg-sidebar: #141517;
  --text: #e9ecef;
  --text-secondary: #ced4da;
  --text-muted: #868e96;
  --border: #373a40;
  --accent: #4dabf7;
  --accent-hover: #74c0fc;
  --accent-light: #1c2b3a;
  --code-bg: #25262b;
  --link: #4dabf7;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

/* ============ Sidebar ============ */
.sidebar {
  position: fixed;
  top: 0; left: 0; bottom: 0;
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  overflow-y: auto;
  z-index: 100;
}

.sidebar-header {
  padding: 1rem;
  border-bottom: 1px solid var(--border);
  position: relative;
}

.site-title {
  display: block;
  font-size: 1.1rem;
  font-weight: 700;
  color: var(--text);
  text-decoration: none;
  margin-bottom: 0.75rem;
}

#search-input {
  width: 100%;
  padding: 0.45rem 0.65rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
  font-size: 0.85rem;
}

#search-input:focus { outline: 2px solid var(--accent); outline-offset: -1px; }

.search-results {
  display: none;
  position: absolute;
  left: 1rem; right: 1rem;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  box-shadow: var(--shadow);
  max-height: 320px;
  overflow-y: auto;
  z-index: 200;
}

.search-results.visible { display: block; }

.search-results a {
  display: block;
  padding: 0.5rem 0.75rem;
  color: var(--text);
  text-decoration: none;
  border-bottom: 1px solid var(--border);
}

.search-results a:last-child { border-bottom: none; }
.search-results a:hover { background: var(--accent-light); }
.search-results .result-title { font-weight: 600; font-size: 0.85rem; }
.search-results .result-summary {
  font-size: 0.75rem;
  color: var(--text-muted);
  overflow: hidden;
  text-overflow: ellipsis;
  white-space: nowrap;
}

.sidebar-nav { padding: 0.75rem 0; }

.nav-section { margin-bottom: 1rem; }

.nav-section-label {
  display: block;
  padding: 0.25rem 1rem;
  font-size: 0.72rem;
  font-weight: 700;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--text-muted);
}

.nav-section ul { list-style: none; }

.nav-section li a {
  display: block;
  padding: 0.3rem 1rem;
  color: var(--text-secondary);
  text-decoration: none;
  font-size: 0.88rem;
  border-left: 2px solid transparent;
}

.nav-section li a:hover { color: var(--text); background: var(--bg-secondary); }

.nav-section li a.active {
  color: var(--accent);
  border-left-color: var(--accent);
  background: var(--accent-light);
  font-weight: 600;
}

.nav-children { padding-left: 1rem; }
.nav-children li a { font-size: 0.84rem; }

/* ============ Content ============ */
.content {
  margin-left: var(--sidebar-width);
  padding: 0 2rem 4rem;
}

.top-bar {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 0.75rem 0;
}

.menu-toggle, .theme-toggle {
  background: none;
  border: none;
  color: var(--text-secondary);
  cursor: pointer;
  padding: 0.4rem;
  border-radius: 6px;
}

.menu-toggle { display: none; }
.menu-toggle:hover, .theme-toggle:hover { background: var(--bg-secondary); }

[data-theme="light"] .moon-icon { display: none; }
[data-theme="dark"] .sun-icon { display: none; }

.page-content {
  max-width: var(--content-max-width);
  margin: 0 auto;
}

.page-content h1 { font-size: 1.9rem; margin: 1rem 0; }
.page-content h2 {
  font-size: 1.4rem;
  margin: 2rem 0 0.75rem;
  padding-bottom: 0.3rem;
  border-bottom: 1px solid var(--border);
}
.page-content h3 { font-size: 1.15rem; margin: 1.5rem 0 0.5rem; }
.page-content p { margin: 0.75rem 0; }
.page-content ul, .page-content ol { margin: 0.75rem 0 0.75rem 1.5rem; }
.page-content a { color: var(--link); }

.page-content code {
  background: var(--code-bg);
  padding: 0.15rem 0.35rem;
  border-radius: 4px;
  font-size: 0.88em;
  font-family: "SF Mono", Menlo, Consolas, monospace;
}

.page-content pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 1rem;
  overflow-x: auto;
  margin: 1rem 0;
}

.page-content pre code { background: none; padding: 0; }

.page-content table {
  border-collapse: collapse;
  width: 100%;
  margin: 1rem 0;
}

.page-content th, .page-content td {
  border: 1px solid var(--border);
  padding: 0.5rem 0.75rem;
  text-align: left;
}

.page-content th { background: var(--bg-secondary); }

.page-content blockquote {
  border-left: 3px solid var(--accent);
  padding: 0.25rem 1rem;
  margin: 1rem 0;
  color: var(--text-secondary);
  background: var(--bg-secondary);
}

/* ============ Next steps ============ */
.next-steps {
  max-width: var(--content-max-width);
  margin: 3rem auto 0;
  padding: 1.25rem 1.5rem;
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 8px;
}

.next-steps h2 {
  font-size: 1rem;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--text-muted);
  margin-bottom: 0.75rem;
}

.next-steps ul { list-style: none; }

.next-steps li a {
  display: block;
  padding: 0.35rem 0;
  color: var(--link);
  text-decoration: none;
  font-weight: 500;
}

.next-steps li a:hover { text-decoration: underline; }

/* ============ Mobile ============ */
.sidebar-overlay {
  display: none;
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.4);
  z-index: 90;
}

@media (max-width: 900px) {
  .sidebar { transform: translateX(-100%); transition: transform 0.2s ease; }
  .sidebar.open { transform: translateX(0); }
  .sidebar-overlay.visible { display: block; }
  .content { margin-left: 0; padding: 0 1rem 3rem; }
  .menu-toggle { display: block; }
}
`

// jsContent is the client-side behaviour: search over search-index.json,
// theme toggle, mobile sidebar, and live reload when served by docweave.
const jsContent = `(function () {
  var body = document.body;
  var basePath = body.dataset.basePath || "";

  // ---- Theme toggle ----
  var root = document.documentElement;
  var stored = localStorage.getItem("docweave-theme");
  if (stored) root.dataset.theme = stored;
  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function () {
      var next = root.dataset.theme === "dark" ? "light" : "dark";
      root.dataset.theme = next;
      localStorage.setItem("docweave-theme", next);
    });
  }

  // ---- Mobile sidebar ----
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");
  var menuToggle = document.getElementById("menu-toggle");
  if (menuToggle) {
    menuToggle.addEventListener("click", function () {
      sidebar.classList.toggle("open");
      overlay.classList.toggle("visible");
    });
  }
  if (overlay) {
    overlay.addEventListener("click", function () {
      sidebar.classList.remove("open");
      overlay.classList.remove("visible");
    });
  }

  // ---- Search ----
  var searchInput = document.getElementById("search-input");
  var searchResults = document.getElementById("search-results");
  var searchIndex = null;

  function loadIndex() {
    if (searchIndex) return Promise.resolve(searchIndex);
    return fetch(basePath + "search-index.json")
      .then(function (r) { return r.json(); })
      .then(function (data) { searchIndex = data; return data; });
  }

  function runSearch(query) {
    var q = query.toLowerCase();
    return searchIndex.filter(function (e) {
      return e.title.toLowerCase().indexOf(q) !== -1 ||
             e.summary.toLowerCase().indexOf(q) !== -1 ||
             e.content.toLowerCase().indexOf(q) !== -1;
    }).slice(0, 8);
  }

  if (searchInput) {
    searchInput.addEventListener("input", function () {
      var query = searchInput.value.trim();
      if (query.length < 2) {
        searchResults.classList.remove("visible");
        return;
      }
      loadIndex().then(function () {
        var hits = runSearch(query);
        searchResults.innerHTML = hits.map(function (e) {
          return '<a href="' + basePath + e.path + '">' +
            '<div class="result-title">' + e.title + '</div>' +
            '<div class="result-summary">' + e.summary + '</div></a>';
        }).join("");
        searchResults.classList.toggle("visible", hits.length > 0);
      });
    });
    document.addEventListener("click", function (ev) {
      if (!searchResults.contains(ev.target) && ev.target !== searchInput) {
        searchResults.classList.remove("visible");
      }
    });
  }

  // ---- Live reload (dev server only) ----
  if (location.protocol === "http:" || location.protocol === "https:") {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    try {
      var ws = new WebSocket(proto + "//" + location.host + "/ws/reload");
      ws.onmessage = function (ev) {
        var msg = JSON.parse(ev.data);
        if (msg.build_id && msg.build_id !== body.dataset.buildId) {
          location.reload();
        }
      };
      ws.onerror = function () { /* static hosting: no reload endpoint */ };
    } catch (e) { /* ignore */ }
  }
})();
`
